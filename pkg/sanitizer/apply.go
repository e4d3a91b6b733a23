package sanitizer

// Transform rewrites a single value.
type Transform[T any] func(T) T

// Apply runs transforms over value left to right. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, fn := range transforms {
		if fn != nil {
			value = fn(value)
		}
	}
	return value
}

// Compose binds transforms into one reusable pipeline.
func Compose[T any](transforms ...func(T) T) Transform[T] {
	chain := append([]func(T) T(nil), transforms...)
	return func(value T) T {
		return Apply(value, chain...)
	}
}
