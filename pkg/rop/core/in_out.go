package core

import (
	"context"
	"time"
)

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ToChan returns a closed channel that yields value once. The channel is
// buffered so it never blocks the caller.
func ToChan[T any](value T) <-chan T {
	out := make(chan T, 1)
	out <- value
	close(out)
	return out
}

// Go runs produce in its own goroutine and delivers the result on a
// buffered channel. The channel closes empty if ctx is already done.
func Go[T any](ctx context.Context, produce func(ctx context.Context) T) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)

		if ctx.Err() != nil {
			return
		}
		out <- produce(ctx)
	}()

	return out
}

// FromChanFirst waits for the first value of out. ok is false when out
// closed empty or ctx ended first.
func FromChanFirst[T any](ctx context.Context, out <-chan T) (res T, ok bool) {
	// a value that is already there wins over a done context
	select {
	case v, running := <-out:
		return v, running
	default:
	}

	select {
	case v, running := <-out:
		if !running {
			return res, false
		}
		return v, true
	case <-ctx.Done():
		return res, false
	}
}

func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	if v, ok := FromChanFirst(ctx, out); ok {
		return v
	}
	return defaultV
}
