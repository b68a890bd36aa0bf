package domain

type TakeoverState int

const (
	TakeoverNormal TakeoverState = iota
	TakeoverHijacked
)

func (s TakeoverState) String() string {
	switch s {
	case TakeoverNormal:
		return "normal"
	case TakeoverHijacked:
		return "hijacked"
	default:
		return "unknown"
	}
}

func (s TakeoverState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
