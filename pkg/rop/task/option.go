package task

import (
	"context"
	"time"

	"github.com/ib-77/altrop/pkg/rop"
	"github.com/ib-77/altrop/pkg/rop/core"
)

// Option is a deferred rop.Option. Calling it starts the work; the channel
// yields exactly one value, or closes empty if ctx ended first.
type Option[T any] func(ctx context.Context) <-chan rop.Option[T]

func FromOption[T any](o rop.Option[T]) Option[T] {
	return func(context.Context) <-chan rop.Option[T] {
		return core.ToChan(o)
	}
}

func Some[T any](v T) Option[T] {
	return FromOption(rop.Some(v))
}

func None[T any]() Option[T] {
	return FromOption(rop.None[T]())
}

// FromFunc runs f in its own goroutine when the task is started.
func FromFunc[T any](f func(ctx context.Context) rop.Option[T]) Option[T] {
	return func(ctx context.Context) <-chan rop.Option[T] {
		return core.Go(ctx, f)
	}
}

// FromTask lifts an effect that always produces a value.
func FromTask[T any](f func(ctx context.Context) T) Option[T] {
	return FromFunc(func(ctx context.Context) rop.Option[T] {
		return rop.Some(f(ctx))
	})
}

// Then runs f with the value of t once t resolved present. An absent t
// short-circuits and f is never called.
func Then[A, B any](t Option[A], f func(a A) Option[B]) Option[B] {
	return chain[rop.Option[A], rop.Option[B]](t,
		func(ctx context.Context, a rop.Option[A]) <-chan rop.Option[B] {
			if v, ok := a.Get(); ok {
				return f(v)(ctx)
			}
			return core.ToChan(rop.None[B]())
		})
}

func Map[A, B any](t Option[A], f func(a A) B) Option[B] {
	return Then(t, func(a A) Option[B] { return Some(f(a)) })
}

// Delay waits d before starting t.
func Delay[T any](d time.Duration, t Option[T]) Option[T] {
	return delay[rop.Option[T]](fixedDelay(d), t)
}

// DelayStep waits the context's step delay (see core.WithStepDelay) before
// starting t.
func DelayStep[T any](t Option[T]) Option[T] {
	return delay[rop.Option[T]](stepDelay, t)
}

// Run starts t and waits for its result.
func Run[T any](ctx context.Context, t Option[T]) (rop.Option[T], error) {
	res, err := await[rop.Option[T]](ctx, t)
	if err != nil {
		return rop.None[T](), err
	}
	return res, nil
}

// OptionAlternative is the Alternative instance for deferred options.
type OptionAlternative[T any] struct{}

func (OptionAlternative[T]) Zero() Option[T] {
	return None[T]()
}

// Alt starts first and waits for it. second is only asked for, and
// started, when first resolved absent.
func (OptionAlternative[T]) Alt(first Option[T], second func() Option[T]) Option[T] {
	return chain[rop.Option[T], rop.Option[T]](first,
		func(ctx context.Context, a rop.Option[T]) <-chan rop.Option[T] {
			if a.IsPresent() {
				return core.ToChan(a)
			}
			return second()(ctx)
		})
}

// FirstPresent evaluates xs one at a time, in order, and resolves to the
// first present result. Candidates after it are never started. An empty
// slice resolves to None without starting anything.
func FirstPresent[T any](xs []Option[T]) Option[T] {
	return rop.FirstAlt[Option[T]](OptionAlternative[T]{}, xs)
}
