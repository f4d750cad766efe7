package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/io-da/dispatch"
)

// RecoveryError wraps a panic value with the stack trace.
// This allows panics to be converted to regular errors and handled gracefully.
type RecoveryError struct {
	// Command is the command being dispatched when the panic occurred.
	Command dispatch.Command
	// PanicValue is the original value that was passed to panic().
	PanicValue any
	// StackTrace contains the full stack trace at the point of panic.
	StackTrace string
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("dispatch: panic recovered handling %q: %v", identify(e.Command), e.PanicValue)
}

// identify returns the identifier of the command, or its type when Identifier panics on a nil receiver.
func identify(cmd dispatch.Command) (id string) {
	defer func() {
		if recover() != nil {
			id = fmt.Sprintf("%T", cmd)
		}
	}()
	return string(cmd.Identifier())
}

// Unwrap returns the panic value when it is an error.
func (e *RecoveryError) Unwrap() error {
	err, _ := e.PanicValue.(error)
	return err
}

// Recover converts a panic in the rest of the chain into a RecoveryError.
func Recover() dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (data any, err error) {
		defer func() {
			if r := recover(); r != nil {
				data = nil
				err = &RecoveryError{
					Command:    cmd,
					PanicValue: r,
					StackTrace: string(debug.Stack()),
				}
			}
		}()
		return next(ctx)
	})
}
