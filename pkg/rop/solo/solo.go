package solo

import (
	"context"

	"github.com/ib-77/altrop/pkg/rop"
)

func Some[T any](input T) rop.Option[T] {
	return rop.Some(input)
}

func None[T any]() rop.Option[T] {
	return rop.None[T]()
}

func Succeed[E, T any](input T) rop.Validation[E, T] {
	return rop.Success[E](input)
}

func Fail[E, T any](failure E) rop.Validation[E, T] {
	return rop.Failure[E, T](failure)
}

// OptionAlternative is the Alternative instance for rop.Option.
type OptionAlternative[T any] struct{}

func (OptionAlternative[T]) Zero() rop.Option[T] {
	return rop.None[T]()
}

func (OptionAlternative[T]) Alt(first rop.Option[T], second func() rop.Option[T]) rop.Option[T] {
	return first.OrElse(second)
}

// ValidationAlternative is the Alternative instance for rop.Validation.
// Failures are combined with Monoid, so it only behaves as an Alternative
// when Monoid obeys its laws.
type ValidationAlternative[E, T any] struct {
	Monoid rop.Monoid[E]
}

func (a ValidationAlternative[E, T]) Zero() rop.Validation[E, T] {
	return rop.Failure[E, T](a.Monoid.Empty())
}

func (a ValidationAlternative[E, T]) Alt(first rop.Validation[E, T],
	second func() rop.Validation[E, T]) rop.Validation[E, T] {

	if first.IsSuccess() {
		return first
	}

	next := second()
	if next.IsSuccess() {
		return next
	}

	return rop.Failure[E, T](a.Monoid.Combine(first.Failure(), next.Failure()))
}

// FirstPresent returns the first present option of xs, or None.
func FirstPresent[T any](xs []rop.Option[T]) rop.Option[T] {
	return rop.FirstAlt[rop.Option[T]](OptionAlternative[T]{}, xs)
}

// FirstSuccessOrAccumulate returns the first success of xs. When every
// element failed, the failures are combined left to right with m, starting
// from m.Empty().
func FirstSuccessOrAccumulate[E, T any](m rop.Monoid[E], xs []rop.Validation[E, T]) rop.Validation[E, T] {
	return rop.FirstAlt[rop.Validation[E, T]](ValidationAlternative[E, T]{Monoid: m}, xs)
}

// FirstPresentOf calls the candidates in order and stops at the first
// present result. Later candidates are not called.
func FirstPresentOf[T any](ctx context.Context,
	candidates ...func(ctx context.Context) rop.Option[T]) rop.Option[T] {

	res := rop.None[T]()
	for _, candidate := range candidates {
		if res.IsPresent() || !rop.IsNil(ctx.Err()) {
			return res
		}
		res = candidate(ctx)
	}
	return res
}

func Map[In, Out any](ctx context.Context,
	input rop.Option[In],
	onPresent func(ctx context.Context, r In) Out) rop.Option[Out] {

	if v, ok := input.Get(); ok {
		return rop.Some(onPresent(ctx, v))
	}
	return rop.None[Out]()
}

func Switch[In, Out any](ctx context.Context,
	input rop.Option[In],
	onPresent func(ctx context.Context, r In) rop.Option[Out]) rop.Option[Out] {

	if v, ok := input.Get(); ok {
		return onPresent(ctx, v)
	}
	return rop.None[Out]()
}

func MapFailure[E1, E2, T any](ctx context.Context,
	input rop.Validation[E1, T],
	onFailure func(ctx context.Context, e E1) E2) rop.Validation[E2, T] {

	if input.IsSuccess() {
		return rop.Success[E2](input.Value())
	}
	return rop.Failure[E2, T](onFailure(ctx, input.Failure()))
}

func Tee[T any](ctx context.Context,
	input rop.Option[T],
	onPresent func(ctx context.Context, r T)) rop.Option[T] {

	if v, ok := input.Get(); ok {
		onPresent(ctx, v)
	}
	return input
}

// ValueOr returns the value carried by p, or fallback when there is none.
func ValueOr[T any](p rop.ValueProvider[T], fallback T) T {
	if v, ok := p.Get(); ok {
		return v
	}
	return fallback
}

func Finally[In, Out any](ctx context.Context, input rop.Option[In],
	onPresent func(ctx context.Context, r In) Out,
	onAbsent func(ctx context.Context) Out) Out {

	if v, ok := input.Get(); ok {
		return onPresent(ctx, v)
	}
	return onAbsent(ctx)
}
