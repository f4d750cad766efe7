package middleware_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/io-da/dispatch"
	"github.com/io-da/dispatch/middleware"
)

//------Identifiers------//
const (
	TestCommand        dispatch.Identifier = "test.command"
	TestKeyedCommand   dispatch.Identifier = "test.keyed"
	TestFailingCommand dispatch.Identifier = "test.failing"
	TestPanicCommand   dispatch.Identifier = "test.panic"
	TestSlowCommand    dispatch.Identifier = "test.slow"
)

var errCommandFailed = errors.New("command failed")

//------Commands------//

type testCommand struct {
	dispatch.Returns[string]
	value string
}

func (*testCommand) Identifier() dispatch.Identifier {
	return TestCommand
}

func (cmd *testCommand) Validate() error {
	if cmd.value == "" {
		return errors.New("value is required")
	}
	return nil
}

type testKeyedCommand struct {
	dispatch.Returns[string]
	key    string
	fail   bool
	panics bool
}

func (*testKeyedCommand) Identifier() dispatch.Identifier {
	return TestKeyedCommand
}

func (cmd *testKeyedCommand) IdempotencyKey() string {
	return cmd.key
}

type testFailingCommand struct{}

func (*testFailingCommand) Identifier() dispatch.Identifier {
	return TestFailingCommand
}

type testPanicCommand struct {
	value any
}

func (*testPanicCommand) Identifier() dispatch.Identifier {
	return TestPanicCommand
}

type testNilCommand struct {
	id dispatch.Identifier
}

func (cmd *testNilCommand) Identifier() dispatch.Identifier {
	return cmd.id
}

type testSlowCommand struct{}

func (*testSlowCommand) Identifier() dispatch.Identifier {
	return TestSlowCommand
}

//------Handlers------//

type handled struct {
	calls atomic.Int32
}

func (h *handled) handlers() []dispatch.Handler {
	return []dispatch.Handler{
		dispatch.HandlerFor(func(_ context.Context, cmd *testCommand) (string, error) {
			h.calls.Add(1)
			return "handled " + cmd.value, nil
		}),
		dispatch.HandlerFor(func(_ context.Context, cmd *testKeyedCommand) (string, error) {
			h.calls.Add(1)
			if cmd.panics {
				panic("keyed command panicked")
			}
			if cmd.fail {
				return "", errCommandFailed
			}
			return "handled " + cmd.key, nil
		}),
		dispatch.HandlerFor(func(_ context.Context, _ *testFailingCommand) (any, error) {
			h.calls.Add(1)
			return nil, errCommandFailed
		}),
		dispatch.HandlerFor(func(_ context.Context, cmd *testPanicCommand) (any, error) {
			h.calls.Add(1)
			panic(cmd.value)
		}),
		dispatch.HandlerFor(func(ctx context.Context, _ *testSlowCommand) (any, error) {
			h.calls.Add(1)
			<-ctx.Done()
			return nil, ctx.Err()
		}),
	}
}

//------General------//

func newDispatcher(t *testing.T, h *handled, steps ...dispatch.Step) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New(h.handlers(), dispatch.WithSteps(steps...))
	require.NoError(t, err)
	return d
}

func recordCorrelationID(ids *[]string) dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, _ dispatch.Command, next dispatch.Next) (any, error) {
		*ids = append(*ids, middleware.CorrelationID(ctx))
		return next(ctx)
	})
}
