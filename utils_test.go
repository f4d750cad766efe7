package dispatch

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"sync/atomic"
)

//------Identifiers------//
const (
	TestCommand1        Identifier = "test.command1"
	TestCommand2        Identifier = "test.command2"
	TestLiteralCommand  Identifier = "test.literal"
	TestUnhandled       Identifier = "test.unhandled"
	TestMistypedCommand Identifier = "test.mistyped"
)

//------Commands------//

type testCommand1 struct {
	Returns[string]
	value string
}

func (*testCommand1) Identifier() Identifier {
	return TestCommand1
}

type testCommand2 struct {
	Returns[int]
}

func (*testCommand2) Identifier() Identifier {
	return TestCommand2
}

type testCommand3 string

func (testCommand3) Identifier() Identifier {
	return TestLiteralCommand
}

type testUnhandledCommand struct {
	Returns[string]
}

func (*testUnhandledCommand) Identifier() Identifier {
	return TestUnhandled
}

type testMistypedCommand struct {
	Returns[string]
}

func (*testMistypedCommand) Identifier() Identifier {
	return TestMistypedCommand
}

type testNilCommand struct {
	id Identifier
}

func (cmd *testNilCommand) Identifier() Identifier {
	return cmd.id
}

//------Handlers------//

type countingHandler struct {
	Handler
	calls atomic.Int32
}

func newCountingHandler(hdl Handler) *countingHandler {
	return &countingHandler{Handler: hdl}
}

func (hdl *countingHandler) Handle(ctx context.Context, cmd Command) (any, error) {
	hdl.calls.Add(1)
	return hdl.Handler.Handle(ctx, cmd)
}

func testHandler1() Handler {
	return HandlerFor(func(_ context.Context, cmd *testCommand1) (string, error) {
		return "handled " + cmd.value, nil
	})
}

func testHandler2() Handler {
	return HandlerFor(func(_ context.Context, _ *testCommand2) (int, error) {
		return int(fibonacci(20).Int64()), nil
	})
}

func testHandler3() Handler {
	return HandlerFor(func(_ context.Context, cmd testCommand3) (string, error) {
		return string(cmd), nil
	})
}

func testMistypedHandler() Handler {
	return HandlerForIdentifier(TestMistypedCommand, func(context.Context, Command) (any, error) {
		return 42, nil
	})
}

//------Steps------//

type observer struct {
	sync.Mutex
	entries []string
}

func (obs *observer) log(format string, args ...any) {
	obs.Lock()
	obs.entries = append(obs.entries, fmt.Sprintf(format, args...))
	obs.Unlock()
}

func (obs *observer) Entries() []string {
	obs.Lock()
	defer obs.Unlock()
	return append([]string(nil), obs.entries...)
}

type observingStep struct {
	name string
	obs  *observer
}

func (step *observingStep) Invoke(ctx context.Context, _ Command, next Next) (any, error) {
	step.obs.log("%s before", step.name)
	data, err := next(ctx)
	step.obs.log("%s after", step.name)
	return data, err
}

func observingHandler(obs *observer) Handler {
	return HandlerFor(func(_ context.Context, cmd *testCommand1) (string, error) {
		obs.log("handle")
		return "handled " + cmd.value, nil
	})
}

func shortCircuitStep(data any) Step {
	return StepFunc(func(context.Context, Command, Next) (any, error) {
		return data, nil
	})
}

//------General------//

func fibonacci(n uint) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	a, b := big.NewInt(0), big.NewInt(1)
	for n--; n > 0; n-- {
		a.Add(a, b)
		a, b = b, a
	}

	return b
}
