package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	StepOptionKey OptionKey = "step_options"
)

type StepOptions struct {
	Delay time.Duration
}

// WithStepDelay sets the pause deferred steps take before doing their work.
func WithStepDelay(ctx context.Context, delay time.Duration) context.Context {
	return context.WithValue(ctx, StepOptionKey, StepOptions{Delay: delay})
}

func GetStepDelay(ctx context.Context, defaultDelay time.Duration) time.Duration {
	options, ok := ctx.Value(StepOptionKey).(StepOptions)
	if ok {
		return options.Delay
	}
	return defaultDelay
}
