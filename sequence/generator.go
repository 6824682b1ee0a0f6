package sequence

// Generator is an infinite, stateful producer of values.
type Generator[T any] interface {
	Next() T
}

// Take draws the next k values from g.
func Take[T any](g Generator[T], k int) []T {
	if k <= 0 {
		return nil
	}
	out := make([]T, 0, k)
	for range k {
		out = append(out, g.Next())
	}
	return out
}

// TakeWhile draws values from g until pred fails. The first failing value is
// consumed and dropped, so g must not be reused when its exact position
// matters.
func TakeWhile[T any](g Generator[T], pred func(T) bool) []T {
	var out []T
	for v := g.Next(); pred(v); v = g.Next() {
		out = append(out, v)
	}
	return out
}
