package dispatch

import (
	"fmt"
)

// DispatchError is used to create errors originating from the dispatcher
type DispatchError string

// Error returns the string message of the error.
func (e DispatchError) Error() string {
	return string(e)
}

const (
	// InvalidCommandError will be returned when attempting to send a nil command.
	InvalidCommandError = DispatchError("dispatch: invalid command")
	// InvalidHandlerError will be returned when attempting to create a dispatcher with a nil handler.
	InvalidHandlerError = DispatchError("dispatch: invalid handler")
	// InvalidStepError will be returned when attempting to create a dispatcher with a nil pipeline step.
	InvalidStepError = DispatchError("dispatch: invalid pipeline step")
	// HandlerNotFoundError will be returned when no handler matches the command provided.
	HandlerNotFoundError = DispatchError("dispatch: no handler found for the command provided")
	// OneHandlerPerCommandError will be returned when more than one handler matches the command provided.
	OneHandlerPerCommandError = DispatchError("dispatch: there can only be one handler per command")
	// UnhandledCommandError will be returned when a handler is invoked with a command it does not match.
	UnhandledCommandError = DispatchError("dispatch: command not handled by this handler")
	// InvalidClosureCommandError will be returned when attempting to handle a command with the closure identifier but invalid type
	InvalidClosureCommandError = DispatchError("dispatch: invalid closure command")
	// UnexpectedResultError will be returned when a handler result does not have the type declared by the command.
	UnexpectedResultError = DispatchError("dispatch: unexpected result type")
)

// RoutingError is returned when a command cannot be routed to exactly one handler.
// Err is either HandlerNotFoundError or OneHandlerPerCommandError.
type RoutingError struct {
	Err      DispatchError
	Command  Command
	Handlers []Handler
}

func (e *RoutingError) Error() string {
	if len(e.Handlers) > 1 {
		return fmt.Sprintf("%s: %q matched %d handlers", e.Err, identify(e.Command), len(e.Handlers))
	}
	return fmt.Sprintf("%s: %q", e.Err, identify(e.Command))
}

func (e *RoutingError) Unwrap() error {
	return e.Err
}

// ResultTypeError is returned by Send when the handler result is not of the declared result type.
type ResultTypeError struct {
	Command  Command
	Result   any
	Expected string
}

func (e *ResultTypeError) Error() string {
	return fmt.Sprintf("%s: %q returned %T, expected %s", UnexpectedResultError, identify(e.Command), e.Result, e.Expected)
}

func (e *ResultTypeError) Unwrap() error {
	return UnexpectedResultError
}

// identify returns the identifier of the command, or its type when Identifier panics on a nil receiver.
func identify(cmd Command) (id string) {
	defer func() {
		if recover() != nil {
			id = fmt.Sprintf("%T", cmd)
		}
	}()
	return string(cmd.Identifier())
}
