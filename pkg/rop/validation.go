package rop

import "fmt"

// Validation is either a success value of type T or a failure of type E.
type Validation[E, T any] struct {
	value     T
	failure   E
	isSuccess bool
}

func Success[E, T any](v T) Validation[E, T] {
	return Validation[E, T]{
		value:     v,
		isSuccess: true,
	}
}

func Failure[E, T any](e E) Validation[E, T] {
	return Validation[E, T]{
		failure:   e,
		isSuccess: false,
	}
}

// FailureFrom re-types a failed validation to a different success type.
// The success value of a successful input is dropped.
func FailureFrom[E, In, Out any](from Validation[E, In]) Validation[E, Out] {
	return Validation[E, Out]{
		failure:   from.failure,
		isSuccess: false,
	}
}

func (v Validation[E, T]) Value() T {
	return v.value
}

func (v Validation[E, T]) Failure() E {
	return v.failure
}

func (v Validation[E, T]) Get() (T, bool) {
	return v.value, v.isSuccess
}

func (v Validation[E, T]) IsSuccess() bool {
	return v.isSuccess
}

func (v Validation[E, T]) IsFailure() bool {
	return !v.isSuccess
}

// IsPresent reports success, so validations satisfy ValueProvider.
func (v Validation[E, T]) IsPresent() bool {
	return v.isSuccess
}

// ToOption drops the failure.
func (v Validation[E, T]) ToOption() Option[T] {
	if v.isSuccess {
		return Some(v.value)
	}
	return None[T]()
}

func (v Validation[E, T]) String() string {
	if v.isSuccess {
		return fmt.Sprintf("Success(%v)", v.value)
	}
	return fmt.Sprintf("Failure(%v)", v.failure)
}
