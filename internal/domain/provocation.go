package domain

import "time"

const (
	TeaseRadius            = 180.0
	TeaseComboWindow       = 2200 * time.Millisecond
	TeaseClicksNeeded      = 3
	ManualOverrideDuration = 9 * time.Second
)

type ProvocationState struct {
	ComboCount    int
	LastClick     time.Time
	OverrideUntil time.Time
}

// OnClick applies one rising-edge primary click. It reports whether the click
// completed a combo and armed a new override.
func (s ProvocationState) OnClick(click, actor Vec2, now time.Time) (ProvocationState, bool) {
	if click.DistanceTo(actor) > TeaseRadius {
		return s, false
	}

	if now.Sub(s.LastClick) > TeaseComboWindow {
		s.ComboCount = 0
	}

	s.ComboCount++
	s.LastClick = now
	if s.ComboCount < TeaseClicksNeeded {
		return s, false
	}

	s.OverrideUntil = now.Add(ManualOverrideDuration)
	s.ComboCount = 0

	return s, true
}
