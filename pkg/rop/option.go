package rop

import "fmt"

// Option holds either a present value or nothing.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func FromPointer[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Value returns the held value, or the zero value of T when absent.
func (o Option[T]) Value() T {
	return o.value
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns o when present, otherwise the result of alternative.
// alternative is not called when o is present.
func (o Option[T]) OrElse(alternative func() Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alternative()
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
