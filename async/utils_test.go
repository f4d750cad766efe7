package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/io-da/dispatch"
)

//------Identifiers------//
const (
	TestCommand        dispatch.Identifier = "test.command"
	TestFailingCommand dispatch.Identifier = "test.failing"
	TestBlockedCommand dispatch.Identifier = "test.blocked"
)

var errCommandFailed = errors.New("command failed")

//------Commands------//

type testCommand struct {
	value int
}

func (*testCommand) Identifier() dispatch.Identifier {
	return TestCommand
}

type testFailingCommand struct{}

func (*testFailingCommand) Identifier() dispatch.Identifier {
	return TestFailingCommand
}

type testBlockedCommand struct {
	release chan struct{}
}

func (*testBlockedCommand) Identifier() dispatch.Identifier {
	return TestBlockedCommand
}

//------Handlers------//

type handled struct {
	calls atomic.Int32
}

func newTestDispatcher(t *testing.T, h *handled) *dispatch.Dispatcher {
	t.Helper()
	d, err := dispatch.New([]dispatch.Handler{
		dispatch.HandlerFor(func(_ context.Context, cmd *testCommand) (int, error) {
			h.calls.Add(1)
			return cmd.value * 2, nil
		}),
		dispatch.HandlerFor(func(_ context.Context, _ *testFailingCommand) (any, error) {
			h.calls.Add(1)
			return nil, errCommandFailed
		}),
		dispatch.HandlerFor(func(_ context.Context, cmd *testBlockedCommand) (any, error) {
			h.calls.Add(1)
			<-cmd.release
			return "released", nil
		}),
	})
	require.NoError(t, err)
	return d
}

func newStartedPool(t *testing.T, h *handled, opts ...Option) *Pool {
	t.Helper()
	pool := NewPool(newTestDispatcher(t, h), opts...)
	pool.Start()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = pool.Shutdown(ctx)
	})
	return pool
}

//------Timetables------//

var errTimetableExhausted = errors.New("timetable exhausted")

// testTimetable yields the given trigger times once each.
type testTimetable struct {
	sync.Mutex
	times []time.Time
	pos   int
}

func newTestTimetable(times ...time.Time) *testTimetable {
	return &testTimetable{times: times, pos: -1}
}

func (tt *testTimetable) Following() time.Time {
	tt.Lock()
	defer tt.Unlock()
	if tt.pos < 0 || tt.pos >= len(tt.times) {
		return time.Time{}
	}
	return tt.times[tt.pos]
}

func (tt *testTimetable) Next() error {
	tt.Lock()
	defer tt.Unlock()
	tt.pos++
	if tt.pos >= len(tt.times) {
		return errTimetableExhausted
	}
	return nil
}

type testUnroutedCommand struct{}

func (*testUnroutedCommand) Identifier() dispatch.Identifier {
	return "test.unrouted"
}
