package rop

import "go.uber.org/multierr"

// Monoid pairs an empty element with an associative Combine.
//
// Callers must uphold the laws, they are not checked:
//
//	Combine(a, Empty()) == a
//	Combine(Empty(), a) == a
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Monoid[E any] struct {
	Empty   func() E
	Combine func(a, b E) E
}

func NewMonoid[E any](empty func() E, combine func(a, b E) E) Monoid[E] {
	return Monoid[E]{Empty: empty, Combine: combine}
}

// ConcatAll combines xs left to right starting from m.Empty().
func ConcatAll[E any](m Monoid[E], xs []E) E {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}

// SliceMonoid concatenates slices. The result never shares a backing array
// with its arguments.
func SliceMonoid[T any]() Monoid[[]T] {
	return Monoid[[]T]{
		Empty: func() []T { return []T{} },
		Combine: func(a, b []T) []T {
			out := make([]T, 0, len(a)+len(b))
			out = append(out, a...)
			return append(out, b...)
		},
	}
}

// ErrorMonoid aggregates errors. nil is the empty element and nested
// aggregates are flattened, so GetErrors returns them in combination order.
func ErrorMonoid() Monoid[error] {
	return Monoid[error]{
		Empty:   func() error { return nil },
		Combine: multierr.Append,
	}
}

// FirstMonoid keeps the first present option.
func FirstMonoid[T any]() Monoid[Option[T]] {
	return Monoid[Option[T]]{
		Empty: None[T],
		Combine: func(a, b Option[T]) Option[T] {
			if a.IsPresent() {
				return a
			}
			return b
		},
	}
}
