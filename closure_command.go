package dispatch

import "context"

const ClosureIdentifier Identifier = "closure"

// Closure is the command type used to dispatch plain functions through the pipeline.
type Closure func(ctx context.Context) (data any, err error)

func (Closure) Identifier() Identifier {
	return ClosureIdentifier
}

// ClosureHandler handles Closure commands by invoking them.
// It must be registered like any other handler for closures to be dispatched.
type ClosureHandler struct {
}

func (hdl *ClosureHandler) Matches(cmd Command) bool {
	_, ok := cmd.(Closure)
	return ok
}

func (hdl *ClosureHandler) Handle(ctx context.Context, cmd Command) (data any, err error) {
	if cmd, ok := cmd.(Closure); ok && cmd != nil {
		return cmd(ctx)
	}
	return nil, InvalidClosureCommandError
}
