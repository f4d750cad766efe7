package dispatch

import (
	"context"
	"reflect"
)

// Dispatcher sends commands through the pipeline steps to the single handler matching them.
// The Dispatcher should be instantiated using the New function.
// Its handlers and steps are fixed at construction, so it is safe for concurrent use.
type Dispatcher struct {
	router *router
	steps  []Step
}

// New instantiates the Dispatcher with the handlers commands are routed to.
// Pipeline steps may optionally be provided with WithSteps.
func New(hdls []Handler, opts ...Option) (*Dispatcher, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	handlers := make([]Handler, 0, len(hdls))
	for _, hdl := range hdls {
		if hdl == nil {
			return nil, InvalidHandlerError
		}
		handlers = append(handlers, hdl)
	}
	steps := make([]Step, 0, len(cfg.steps))
	for _, step := range cfg.steps {
		if step == nil {
			return nil, InvalidStepError
		}
		steps = append(steps, step)
	}

	return &Dispatcher{
		router: newRouter(handlers),
		steps:  steps,
	}, nil
}

// Send the command through the pipeline steps to its handler and return the result.
// Errors from routing, the handler or any step are returned unchanged.
func (d *Dispatcher) Send(ctx context.Context, cmd Command) (any, error) {
	if cmd == nil {
		return nil, InvalidCommandError
	}
	return chain(cmd, d.handling(cmd), d.steps)(ctx)
}

// Send the command through the dispatcher and return its result as the type declared by the command.
func Send[R any](ctx context.Context, d *Dispatcher, cmd Returning[R]) (R, error) {
	var zero R
	data, err := d.Send(ctx, cmd)
	if err != nil || data == nil {
		return zero, err
	}
	res, ok := data.(R)
	if !ok {
		return zero, &ResultTypeError{Command: cmd, Result: data, Expected: reflect.TypeFor[R]().String()}
	}
	return res, nil
}

//-----Private Functions------//

// handling is the innermost continuation. Routing happens only once the chain reaches it.
func (d *Dispatcher) handling(cmd Command) Next {
	return func(ctx context.Context) (any, error) {
		hdl, err := d.router.route(cmd)
		if err != nil {
			return nil, err
		}
		return hdl.Handle(ctx, cmd)
	}
}
