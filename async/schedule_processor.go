package async

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const idleSleep = time.Hour

type scheduleProcessor struct {
	sync.Mutex
	pool              *Pool
	scheduledCommands map[uuid.UUID]*scheduledCommand
	triggerSignal     chan struct{}
	shuttingDown      *flag
	sleepTimer        *time.Timer
	sleepUntil        time.Time
}

func newScheduleProcessor(pool *Pool) *scheduleProcessor {
	return &scheduleProcessor{
		pool:              pool,
		scheduledCommands: make(map[uuid.UUID]*scheduledCommand),
		triggerSignal:     make(chan struct{}, 1),
		shuttingDown:      newFlag(),
	}
}

func (pro *scheduleProcessor) add(schCmd *scheduledCommand) uuid.UUID {
	pro.Lock()
	key := uuid.New()
	pro.scheduledCommands[key] = schCmd
	pro.Unlock()
	pro.trigger()
	return key
}

func (pro *scheduleProcessor) remove(keys ...uuid.UUID) {
	pro.Lock()
	for _, key := range keys {
		delete(pro.scheduledCommands, key)
	}
	pro.Unlock()
	pro.trigger()
}

func (pro *scheduleProcessor) size() int {
	pro.Lock()
	defer pro.Unlock()
	return len(pro.scheduledCommands)
}

// shutdown must not take the lock: the processor may hold it while dispatching.
func (pro *scheduleProcessor) shutdown() {
	pro.shuttingDown.enable()
	pro.trigger()
}

func (pro *scheduleProcessor) process() {
	for !pro.shuttingDown.enabled() {
		pro.Lock()
		now := time.Now()
		pro.sleepUntil = time.Time{}
		for key, schCmd := range pro.scheduledCommands {
			following := schCmd.tt.Following()
			if following.IsZero() {
				if err := schCmd.tt.Next(); err != nil {
					delete(pro.scheduledCommands, key)
					continue
				}
				following = schCmd.tt.Following()
			}

			if !now.Before(following) {
				_, _ = pro.pool.Dispatch(context.Background(), schCmd.cmd)
				if err := schCmd.tt.Next(); err != nil {
					delete(pro.scheduledCommands, key)
					continue
				}
				following = schCmd.tt.Following()
			}
			pro.updateSleepUntil(following)
		}
		pro.updateSleepTimer(pro.determineSleepDuration())
		pro.Unlock()

		// allow the processor to be triggered either with timer or directly
		select {
		case <-pro.sleepTimer.C:
		case <-pro.triggerSignal:
		}
	}
	if pro.sleepTimer != nil {
		pro.sleepTimer.Stop()
	}
}

func (pro *scheduleProcessor) trigger() {
	select {
	case pro.triggerSignal <- struct{}{}:
	default:
	}
}

func (pro *scheduleProcessor) updateSleepUntil(nextTrigger time.Time) {
	if pro.sleepUntil.IsZero() || nextTrigger.Before(pro.sleepUntil) {
		pro.sleepUntil = nextTrigger
	}
}

func (pro *scheduleProcessor) determineSleepDuration() time.Duration {
	if pro.sleepUntil.IsZero() || len(pro.scheduledCommands) == 0 {
		return idleSleep
	}
	return time.Until(pro.sleepUntil)
}

func (pro *scheduleProcessor) updateSleepTimer(d time.Duration) {
	if pro.sleepTimer == nil {
		pro.sleepTimer = time.NewTimer(d)
		return
	}
	pro.sleepTimer.Reset(d)
}
