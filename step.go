package dispatch

import "context"

// Next is the continuation handed to a Step: invoking it runs the rest of the chain.
type Next func(ctx context.Context) (data any, err error)

// Step must be implemented for a type to qualify as a pipeline step.
// A step may act before and after calling next, skip next entirely, or replace its result or error.
// Any per-call state must be derived from the command, not stored on the step.
type Step interface {
	Invoke(ctx context.Context, cmd Command, next Next) (data any, err error)
}

// StepFunc adapts an ordinary function to the Step interface.
type StepFunc func(ctx context.Context, cmd Command, next Next) (data any, err error)

// Invoke calls fn(ctx, cmd, next).
func (fn StepFunc) Invoke(ctx context.Context, cmd Command, next Next) (any, error) {
	return fn(ctx, cmd, next)
}

// chain wraps next with the steps so that steps[0] is the outermost and runs first.
func chain(cmd Command, next Next, steps []Step) Next {
	for i := len(steps) - 1; i >= 0; i-- {
		next = link(cmd, steps[i], next)
	}
	return next
}

func link(cmd Command, step Step, next Next) Next {
	return func(ctx context.Context) (any, error) {
		return step.Invoke(ctx, cmd, next)
	}
}
