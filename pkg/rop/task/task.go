package task

import (
	"context"
	"time"

	"github.com/ib-77/altrop/pkg/rop/core"
	"github.com/pkg/errors"
)

// DefaultStepDelay is used by DelayStep when the context carries no step
// options.
const DefaultStepDelay = 500 * time.Millisecond

// ErrNoResult is returned by Run when a deferred computation finished
// without delivering a value while its context was still live.
var ErrNoResult = errors.New("task completed without a result")

// chain starts first, waits for its result and hands it to next. Nothing
// after first is started once ctx is done.
func chain[A, B any](first func(ctx context.Context) <-chan A,
	next func(ctx context.Context, a A) <-chan B) func(ctx context.Context) <-chan B {

	return func(ctx context.Context) <-chan B {
		out := make(chan B, 1)

		go func() {
			defer close(out)

			a, ok := core.FromChanFirst(ctx, first(ctx))
			if !ok || ctx.Err() != nil {
				return
			}

			b, ok := core.FromChanFirst(ctx, next(ctx, a))
			if ok {
				out <- b
			}
		}()

		return out
	}
}

// delay waits before starting run. The result channel closes empty if ctx
// ends during the wait.
func delay[R any](wait func(ctx context.Context) time.Duration,
	run func(ctx context.Context) <-chan R) func(ctx context.Context) <-chan R {

	return func(ctx context.Context) <-chan R {
		out := make(chan R, 1)

		go func() {
			defer close(out)

			if err := core.Sleep(ctx, wait(ctx)); err != nil {
				return
			}

			r, ok := core.FromChanFirst(ctx, run(ctx))
			if ok {
				out <- r
			}
		}()

		return out
	}
}

func stepDelay(ctx context.Context) time.Duration {
	return core.GetStepDelay(ctx, DefaultStepDelay)
}

func fixedDelay(d time.Duration) func(ctx context.Context) time.Duration {
	return func(context.Context) time.Duration { return d }
}

// await drives run to completion. The error is the context error, or
// ErrNoResult when run closed empty on a live context.
func await[R any](ctx context.Context, run func(ctx context.Context) <-chan R) (R, error) {
	r, ok := core.FromChanFirst(ctx, run(ctx))
	if ok {
		return r, nil
	}
	if err := ctx.Err(); err != nil {
		return r, err
	}
	return r, ErrNoResult
}
