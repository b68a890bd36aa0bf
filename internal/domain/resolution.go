package domain

// Resolution is a value that is either still unresolved or was resolved once.
type Resolution[T any] struct {
	value    T
	resolved bool
}

func Resolved[T any](value T) Resolution[T] {
	return Resolution[T]{value: value, resolved: true}
}

func (r Resolution[T]) Get() (T, bool) {
	return r.value, r.resolved
}

func (r Resolution[T]) IsResolved() bool {
	return r.resolved
}
