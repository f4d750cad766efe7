package dispatch

// router resolves a command to the single handler matching it.
type router struct {
	handlers []Handler
}

func newRouter(hdls []Handler) *router {
	return &router{
		handlers: hdls,
	}
}

func (r *router) route(cmd Command) (Handler, error) {
	var matching []Handler
	for _, hdl := range r.handlers {
		if hdl.Matches(cmd) {
			matching = append(matching, hdl)
		}
	}

	switch len(matching) {
	case 0:
		return nil, &RoutingError{Err: HandlerNotFoundError, Command: cmd}
	case 1:
		return matching[0], nil
	default:
		return nil, &RoutingError{Err: OneHandlerPerCommandError, Command: cmd, Handlers: matching}
	}
}
