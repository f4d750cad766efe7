package async

import (
	"github.com/io-da/dispatch"
)

// Async is the struct returned from dispatched commands.
// It resolves once a worker has sent the command.
type Async struct {
	cmd  dispatch.Command
	data any
	err  error
	done chan struct{}
}

func newAsync(cmd dispatch.Command) *Async {
	return &Async{
		cmd:  cmd,
		done: make(chan struct{}),
	}
}

//------Fetch Data------//

// Command returns the command this Async resolves for.
func (as *Async) Command() dispatch.Command {
	return as.cmd
}

// Await for the command to be sent and return its error.
func (as *Async) Await() error {
	<-as.done
	return as.err
}

// Get waits for the command to be sent and returns its result.
func (as *Async) Get() (any, error) {
	if err := as.Await(); err != nil {
		return nil, err
	}
	return as.data, nil
}

// Done returns a channel closed once the command has been sent.
func (as *Async) Done() <-chan struct{} {
	return as.done
}

//------Internal------//

func (as *Async) fail(err error) {
	as.err = err
	close(as.done)
}

func (as *Async) success(data any) {
	as.data = data
	close(as.done)
}
