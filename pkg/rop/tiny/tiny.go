package tiny

import (
	"context"

	"github.com/ib-77/altrop/pkg/rop"
	"github.com/ib-77/altrop/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx context.Context
	res rop.Option[T]
}

func Start[T any](ctx context.Context, r rop.Option[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, rop.Some(v))
}

func Empty[T any](ctx context.Context) Chain[T] {
	return Start(ctx, rop.None[T]())
}

func (c Chain[T]) Result() rop.Option[T] {
	return c.res
}

// Then composes functions that already return rop.Option[T]
func (c Chain[T]) Then(onPresent func(ctx context.Context, t T) rop.Option[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Switch(c.ctx, c.res, onPresent)}
}

// Map transforms the present value
func (c Chain[T]) Map(onPresent func(ctx context.Context, t T) T) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: solo.Map(c.ctx, c.res, onPresent)}
}

// OrElse calls alternative only when the chain holds no value
func (c Chain[T]) OrElse(alternative func(ctx context.Context) rop.Option[T]) Chain[T] {
	return Chain[T]{ctx: c.ctx, res: c.res.OrElse(func() rop.Option[T] { return alternative(c.ctx) })}
}

// Or tries the alternatives in order until one yields a value.
// Alternatives after the first present one are not called.
func (c Chain[T]) Or(alternatives ...func(ctx context.Context) rop.Option[T]) Chain[T] {
	if c.res.IsPresent() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.FirstPresentOf(c.ctx, alternatives...)}
}

// Ensure triggers side effects without changing the result
func (c Chain[T]) Ensure(onPresent func(context.Context, T), onAbsent func(context.Context)) Chain[T] {
	if v, ok := c.res.Get(); ok {
		if onPresent != nil {
			onPresent(c.ctx, v)
		}
		return c
	}

	if onAbsent != nil {
		onAbsent(c.ctx)
	}
	return c
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onPresent func(context.Context, T) T,
	onAbsent func(context.Context) T,
) T {
	return solo.Finally(c.ctx, c.res, onPresent, onAbsent)
}
