package task

import (
	"context"
	"time"

	"github.com/ib-77/altrop/pkg/rop"
	"github.com/ib-77/altrop/pkg/rop/core"
)

// Validation is a deferred rop.Validation with the same delivery contract
// as Option.
type Validation[E, T any] func(ctx context.Context) <-chan rop.Validation[E, T]

func FromValidation[E, T any](v rop.Validation[E, T]) Validation[E, T] {
	return func(context.Context) <-chan rop.Validation[E, T] {
		return core.ToChan(v)
	}
}

func Succeed[E, T any](v T) Validation[E, T] {
	return FromValidation(rop.Success[E](v))
}

func Fail[E, T any](e E) Validation[E, T] {
	return FromValidation(rop.Failure[E, T](e))
}

func FromValidationFunc[E, T any](f func(ctx context.Context) rop.Validation[E, T]) Validation[E, T] {
	return func(ctx context.Context) <-chan rop.Validation[E, T] {
		return core.Go(ctx, f)
	}
}

// FromTaskValidation lifts an effect that always succeeds.
func FromTaskValidation[E, T any](f func(ctx context.Context) T) Validation[E, T] {
	return FromValidationFunc(func(ctx context.Context) rop.Validation[E, T] {
		return rop.Success[E](f(ctx))
	})
}

// Try lifts a (value, error) function.
func Try[T any](f func(ctx context.Context) (T, error)) Validation[error, T] {
	return FromValidationFunc(func(ctx context.Context) rop.Validation[error, T] {
		v, err := f(ctx)
		return rop.FromError(v, err)
	})
}

// ThenValidation runs f with the success value of t. A failed t
// short-circuits with its failure.
func ThenValidation[E, A, B any](t Validation[E, A], f func(a A) Validation[E, B]) Validation[E, B] {
	return chain[rop.Validation[E, A], rop.Validation[E, B]](t,
		func(ctx context.Context, a rop.Validation[E, A]) <-chan rop.Validation[E, B] {
			if v, ok := a.Get(); ok {
				return f(v)(ctx)
			}
			return core.ToChan(rop.FailureFrom[E, A, B](a))
		})
}

// MapFailure transforms the failure of t, leaving successes untouched.
func MapFailure[E1, E2, T any](t Validation[E1, T], f func(e E1) E2) Validation[E2, T] {
	return chain[rop.Validation[E1, T], rop.Validation[E2, T]](t,
		func(ctx context.Context, a rop.Validation[E1, T]) <-chan rop.Validation[E2, T] {
			if v, ok := a.Get(); ok {
				return core.ToChan(rop.Success[E2](v))
			}
			return core.ToChan(rop.Failure[E2, T](f(a.Failure())))
		})
}

func DelayValidation[E, T any](d time.Duration, t Validation[E, T]) Validation[E, T] {
	return delay[rop.Validation[E, T]](fixedDelay(d), t)
}

func DelayValidationStep[E, T any](t Validation[E, T]) Validation[E, T] {
	return delay[rop.Validation[E, T]](stepDelay, t)
}

// RunValidation starts t and waits for its result. On error the returned
// validation is the zero value and must not be inspected.
func RunValidation[E, T any](ctx context.Context, t Validation[E, T]) (rop.Validation[E, T], error) {
	return await[rop.Validation[E, T]](ctx, t)
}

// ValidationAlternative is the Alternative instance for deferred
// validations. Failures are combined with Monoid.
type ValidationAlternative[E, T any] struct {
	Monoid rop.Monoid[E]
}

func (a ValidationAlternative[E, T]) Zero() Validation[E, T] {
	return Fail[E, T](a.Monoid.Empty())
}

// Alt starts first and waits for it. A success is returned as is and second
// is never started; otherwise second runs and a second failure is combined
// with the first one.
func (a ValidationAlternative[E, T]) Alt(first Validation[E, T],
	second func() Validation[E, T]) Validation[E, T] {

	return chain[rop.Validation[E, T], rop.Validation[E, T]](first,
		func(ctx context.Context, acc rop.Validation[E, T]) <-chan rop.Validation[E, T] {
			if acc.IsSuccess() {
				return core.ToChan(acc)
			}

			return chain[rop.Validation[E, T], rop.Validation[E, T]](second(),
				func(_ context.Context, cur rop.Validation[E, T]) <-chan rop.Validation[E, T] {
					if cur.IsSuccess() {
						return core.ToChan(cur)
					}
					return core.ToChan(rop.Failure[E, T](a.Monoid.Combine(acc.Failure(), cur.Failure())))
				})(ctx)
		})
}

// FirstSuccessOrAccumulate evaluates xs one at a time, in order, and
// resolves to the first success; later candidates are never started. When
// all fail the result is every failure combined left to right with m,
// starting from m.Empty().
func FirstSuccessOrAccumulate[E, T any](m rop.Monoid[E], xs []Validation[E, T]) Validation[E, T] {
	return rop.FirstAlt[Validation[E, T]](ValidationAlternative[E, T]{Monoid: m}, xs)
}
