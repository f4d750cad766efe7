package async

// PoolError is used to create errors originating from the worker pool
type PoolError string

// Error returns the string message of the error.
func (e PoolError) Error() string {
	return string(e)
}

const (
	// PoolNotStartedError will be returned when attempting to dispatch a command before the pool is started.
	PoolNotStartedError = PoolError("async: the pool is not started")
	// PoolIsShuttingDownError will be returned when attempting to dispatch a command while the pool is shutting down.
	PoolIsShuttingDownError = PoolError("async: the pool is shutting down")
	// EmptyAwaitListError will be returned when attempting to await an empty AsyncList
	EmptyAwaitListError = PoolError("async: await list is empty")
	// InvalidTimetableError will be returned when attempting to schedule a command without a timetable.
	InvalidTimetableError = PoolError("async: invalid timetable")
)
