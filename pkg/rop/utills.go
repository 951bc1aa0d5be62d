package rop

import (
	"context"
	"errors"
	"reflect"

	"go.uber.org/multierr"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits an aggregated error (errors.Join or ErrorMonoid) into
// its parts. A nil error yields an empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return multierr.Errors(err)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// FromError turns a (value, error) pair into a validation.
func FromError[T any](v T, err error) Validation[error, T] {
	if err != nil {
		return Failure[error, T](err)
	}
	return Success[error](v)
}

// FromBool returns Some(v) when ok is true.
func FromBool[T any](v T, ok bool) Option[T] {
	if ok {
		return Some(v)
	}
	return None[T]()
}
