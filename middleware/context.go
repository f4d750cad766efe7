package middleware

import (
	"context"
	"time"

	"github.com/io-da/dispatch"
)

// ContextConfig configures context behavior for dispatching.
type ContextConfig struct {
	// Timeout sets maximum duration for the rest of the chain.
	// If zero, no timeout is applied.
	Timeout time.Duration

	// ReturnWhenDone causes the step to return ctx.Err() immediately
	// if the context is already canceled, without calling the rest of the chain.
	ReturnWhenDone bool
}

// Context returns a step that manages the context handed to the rest of the chain.
func Context(cfg ContextConfig) dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, _ dispatch.Command, next dispatch.Next) (any, error) {
		if cfg.ReturnWhenDone && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
			defer cancel()
		}
		return next(ctx)
	})
}

// Timeout bounds the rest of the chain with a per-dispatch timeout.
// Handlers observe it through their context. Zero or negative duration disables the timeout.
func Timeout(d time.Duration) dispatch.Step {
	return Context(ContextConfig{Timeout: d, ReturnWhenDone: true})
}
