package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/io-da/dispatch"
)

// ErrValidation is matched by every ValidationError.
var ErrValidation = errors.New("dispatch: command validation failed")

// Validator is implemented by commands able to check their own fields.
type Validator interface {
	Validate() error
}

// ValidationError is returned when a command fails its own validation.
type ValidationError struct {
	Command dispatch.Command
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrValidation, identify(e.Command), e.Err)
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// Validate rejects commands implementing Validator whose validation fails,
// before the rest of the chain runs. Other commands pass through.
func Validate() dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
		if v, ok := cmd.(Validator); ok {
			if err := v.Validate(); err != nil {
				return nil, &ValidationError{Command: cmd, Err: err}
			}
		}
		return next(ctx)
	})
}
