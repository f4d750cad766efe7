package dispatch

// ErrorHandler must be implemented for a type to observe the errors of dispatched commands.
// Error handlers are attached as a pipeline step and cannot alter the error.
type ErrorHandler interface {
	Handle(cmd Command, err error)
}

// ErrorHandlerFunc adapts an ordinary function to the ErrorHandler interface.
type ErrorHandlerFunc func(cmd Command, err error)

// Handle calls fn(cmd, err).
func (fn ErrorHandlerFunc) Handle(cmd Command, err error) {
	fn(cmd, err)
}
