package async

import (
	"time"

	"github.com/io-da/schedule"

	"github.com/io-da/dispatch"
)

// Timetable tells when a scheduled command is due.
// Following returns the upcoming trigger, or the zero time before the first Next.
// Next advances to the following trigger and fails once the timetable is exhausted.
type Timetable interface {
	Following() time.Time
	Next() error
}

var _ Timetable = (*schedule.Schedule)(nil)

type scheduledCommand struct {
	cmd dispatch.Command
	tt  Timetable
}

func newScheduledCommand(cmd dispatch.Command, tt Timetable) *scheduledCommand {
	return &scheduledCommand{
		cmd: cmd,
		tt:  tt,
	}
}
