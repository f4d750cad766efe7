package dispatch

import "context"

// Handler must be implemented for a type to qualify as a command handler.
// Matches must be a pure predicate, and exactly one registered handler is expected to match any command.
type Handler interface {
	Matches(cmd Command) bool
	Handle(ctx context.Context, cmd Command) (data any, err error)
}

// HandlerFor creates a Handler that matches every command of the concrete type C.
func HandlerFor[C Command, R any](fn func(ctx context.Context, cmd C) (R, error)) Handler {
	return &typedHandler[C, R]{fn: fn}
}

// HandlerForIdentifier creates a Handler that matches every command with the given identifier.
func HandlerForIdentifier(id Identifier, fn func(ctx context.Context, cmd Command) (any, error)) Handler {
	return &identifiedHandler{id: id, fn: fn}
}

type typedHandler[C Command, R any] struct {
	fn func(ctx context.Context, cmd C) (R, error)
}

func (hdl *typedHandler[C, R]) Matches(cmd Command) bool {
	_, ok := cmd.(C)
	return ok
}

func (hdl *typedHandler[C, R]) Handle(ctx context.Context, cmd Command) (any, error) {
	c, ok := cmd.(C)
	if !ok {
		return nil, UnhandledCommandError
	}
	return hdl.fn(ctx, c)
}

type identifiedHandler struct {
	id Identifier
	fn func(ctx context.Context, cmd Command) (any, error)
}

func (hdl *identifiedHandler) Matches(cmd Command) bool {
	return cmd.Identifier() == hdl.id
}

func (hdl *identifiedHandler) Handle(ctx context.Context, cmd Command) (any, error) {
	if !hdl.Matches(cmd) {
		return nil, UnhandledCommandError
	}
	return hdl.fn(ctx, cmd)
}
