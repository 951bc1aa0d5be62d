package tiny

import (
	"context"
	"testing"

	"github.com/ib-77/altrop/pkg/rop"
)

func TestStartAndResult_Present(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := Start(ctx, rop.Some(5)).Result()

	if v, ok := out.Get(); !ok || v != 5 {
		t.Fatalf("expected Some(5), got: %v", out)
	}
}

func TestEmpty(t *testing.T) {
	t.Parallel()
	out := Empty[int](context.Background()).Result()
	if out.IsPresent() {
		t.Fatalf("expected None, got: %v", out)
	}
}

func TestThen_ShortCircuitOnAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	called := false
	out := Empty[int](ctx).
		Then(func(ctx context.Context, t int) rop.Option[int] {
			called = true
			return rop.Some(t + 1)
		}).
		Result()

	if out.IsPresent() {
		t.Fatalf("expected None, got: %v", out)
	}
	if called {
		t.Fatalf("onPresent should not be called when the chain is empty")
	}
}

func TestThenAndMap_PresentPath(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := FromValue(ctx, 3).
		Then(func(ctx context.Context, t int) rop.Option[int] { return rop.Some(t * 2) }).
		Map(func(ctx context.Context, t int) int { return t + 1 }).
		Result()

	if v, ok := out.Get(); !ok || v != 7 {
		t.Fatalf("expected Some(7), got: %v", out)
	}
}

func TestOrElse_OnlyWhenAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	alt := func(ctx context.Context) rop.Option[int] {
		calls++
		return rop.Some(9)
	}

	if v := FromValue(ctx, 1).OrElse(alt).Result().Value(); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if calls != 0 {
		t.Fatalf("alternative must not run for a present chain, ran %d times", calls)
	}

	if v := Empty[int](ctx).OrElse(alt).Result().Value(); v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}
	if calls != 1 {
		t.Fatalf("expected alternative to run once, ran %d times", calls)
	}
}

func TestOr_FirstPresentWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var called []int
	alt := func(n int, out rop.Option[int]) func(ctx context.Context) rop.Option[int] {
		return func(ctx context.Context) rop.Option[int] {
			called = append(called, n)
			return out
		}
	}

	out := Empty[int](ctx).
		Or(alt(0, rop.None[int]()), alt(1, rop.Some(1)), alt(2, rop.Some(2))).
		Result()

	if v, ok := out.Get(); !ok || v != 1 {
		t.Fatalf("expected Some(1), got: %v", out)
	}
	if len(called) != 2 || called[0] != 0 || called[1] != 1 {
		t.Fatalf("expected alternatives [0 1] to run, got %v", called)
	}
}

func TestOr_NoAlternatives(t *testing.T) {
	t.Parallel()
	out := Empty[int](context.Background()).Or().Result()
	if out.IsPresent() {
		t.Fatalf("expected None, got: %v", out)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	present, absent := 0, 0
	onPresent := func(context.Context, int) { present++ }
	onAbsent := func(context.Context) { absent++ }

	FromValue(ctx, 1).Ensure(onPresent, onAbsent)
	Empty[int](ctx).Ensure(onPresent, onAbsent)
	Empty[int](ctx).Ensure(nil, nil)

	if present != 1 || absent != 1 {
		t.Fatalf("expected one call each, got present=%d absent=%d", present, absent)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	onPresent := func(ctx context.Context, t int) int { return t * 10 }
	onAbsent := func(ctx context.Context) int { return -1 }

	if v := FromValue(ctx, 2).Finally(onPresent, onAbsent); v != 20 {
		t.Fatalf("expected 20, got %d", v)
	}
	if v := Empty[int](ctx).Finally(onPresent, onAbsent); v != -1 {
		t.Fatalf("expected -1, got %d", v)
	}
}
