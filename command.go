package dispatch

// Identifier is used to create a consistent identity solution for commands
type Identifier string

// Command is the interface that must be implemented by any type to be considered a command.
type Command interface {
	Identifier() Identifier
}

// Returning is a Command that declares the type of its result.
// Commands declare it by embedding Returns.
type Returning[R any] interface {
	Command
	result() R
}

// Returns must be embedded by a command to declare R as its result type.
//
//	type CreateUser struct {
//		dispatch.Returns[UserID]
//		Name string
//	}
type Returns[R any] struct{}

func (Returns[R]) result() (r R) {
	return
}
