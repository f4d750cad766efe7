package async

import (
	"context"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/io-da/dispatch"
)

// Sender is the synchronous dispatching capability the pool runs commands with.
// It is implemented by *dispatch.Dispatcher.
type Sender interface {
	Send(ctx context.Context, cmd dispatch.Command) (any, error)
}

var _ Sender = (*dispatch.Dispatcher)(nil)

// Pool sends commands through a Sender using a pool of workers.
// The Pool should be instantiated using the NewPool function.
type Pool struct {
	mu                sync.RWMutex
	sender            Sender
	workerPoolSize    int
	queueBuffer       int
	started           *flag
	shuttingDown      *flag
	queue             chan *job
	closing           chan struct{}
	senders           sync.WaitGroup
	workers           sync.WaitGroup
	scheduleProcessor *scheduleProcessor
}

// Option configures a Pool on creation.
type Option func(pool *Pool)

// WorkerPoolSize may optionally be provided to tweak the worker pool size.
// It defaults to the value returned by runtime.GOMAXPROCS(0).
func WorkerPoolSize(workerPoolSize int) Option {
	return func(pool *Pool) {
		if workerPoolSize > 0 {
			pool.workerPoolSize = workerPoolSize
		}
	}
}

// QueueBuffer may optionally be provided to tweak the buffer size of the commands queue.
// This value may have high impact on performance depending on the use case.
// It defaults to 100.
func QueueBuffer(queueBuffer int) Option {
	return func(pool *Pool) {
		if queueBuffer >= 0 {
			pool.queueBuffer = queueBuffer
		}
	}
}

// NewPool instantiates the Pool struct.
// The workers are started separately (Start function) for dependency injection purposes.
func NewPool(sender Sender, opts ...Option) *Pool {
	pool := &Pool{
		sender:         sender,
		workerPoolSize: runtime.GOMAXPROCS(0),
		queueBuffer:    100,
		started:        newFlag(),
		shuttingDown:   newFlag(),
	}
	for _, opt := range opts {
		opt(pool)
	}
	pool.scheduleProcessor = newScheduleProcessor(pool)
	return pool
}

// Start the workers and the schedule processor.
// Subsequent calls have no effect.
func (pool *Pool) Start() {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	if pool.shuttingDown.enabled() || !pool.started.enable() {
		return
	}
	pool.queue = make(chan *job, pool.queueBuffer)
	pool.closing = make(chan struct{})
	for i := 0; i < pool.workerPoolSize; i++ {
		pool.workers.Add(1)
		go pool.worker(pool.queue)
	}
	go pool.scheduleProcessor.process()
}

// Dispatch queues the command to be sent by the workers.
// The returned Async resolves with the result of the command.
// It blocks while the queue is full. A done context or a pool shutdown unblocks it with an error.
func (pool *Pool) Dispatch(ctx context.Context, cmd dispatch.Command) (*Async, error) {
	if cmd == nil {
		return nil, dispatch.InvalidCommandError
	}
	pool.mu.RLock()
	if err := pool.isAvailable(); err != nil {
		pool.mu.RUnlock()
		return nil, err
	}
	pool.senders.Add(1)
	pool.mu.RUnlock()
	defer pool.senders.Done()

	as := newAsync(cmd)
	select {
	case pool.queue <- &job{ctx: ctx, as: as}:
		return as, nil
	case <-pool.closing:
		return nil, PoolIsShuttingDownError
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Schedule the command to be dispatched every time the timetable comes due.
// The returned key may be used to Unschedule it.
func (pool *Pool) Schedule(cmd dispatch.Command, tt Timetable) (uuid.UUID, error) {
	if cmd == nil {
		return uuid.Nil, dispatch.InvalidCommandError
	}
	if tt == nil {
		return uuid.Nil, InvalidTimetableError
	}
	// the processor takes the pool lock while holding its own, so it must not be taken the other way around
	pool.mu.RLock()
	err := pool.isAvailable()
	pool.mu.RUnlock()
	if err != nil {
		return uuid.Nil, err
	}
	return pool.scheduleProcessor.add(newScheduledCommand(cmd, tt)), nil
}

// Unschedule removes scheduled commands by their keys.
func (pool *Pool) Unschedule(keys ...uuid.UUID) {
	pool.scheduleProcessor.remove(keys...)
}

// Shutdown the pool gracefully.
// Queued commands are still sent while scheduled commands are discarded.
// Dispatch calls blocked on a full queue are rejected.
// It returns once every worker is done or when the context is done.
func (pool *Pool) Shutdown(ctx context.Context) error {
	pool.mu.Lock()
	if !pool.started.enabled() || !pool.shuttingDown.enable() {
		pool.mu.Unlock()
		return nil
	}
	close(pool.closing)
	pool.mu.Unlock()
	pool.scheduleProcessor.shutdown()

	done := make(chan struct{})
	go func() {
		// the queue is closed only once no Dispatch can still send on it
		pool.senders.Wait()
		close(pool.queue)
		pool.workers.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

//-----Private Functions------//

type job struct {
	ctx context.Context
	as  *Async
}

func (pool *Pool) worker(queue <-chan *job) {
	defer pool.workers.Done()
	for j := range queue {
		data, err := pool.sender.Send(j.ctx, j.as.cmd)
		if err != nil {
			j.as.fail(err)
			continue
		}
		j.as.success(data)
	}
}

func (pool *Pool) isAvailable() error {
	if pool.shuttingDown.enabled() {
		return PoolIsShuttingDownError
	}
	if !pool.started.enabled() {
		return PoolNotStartedError
	}
	return nil
}
