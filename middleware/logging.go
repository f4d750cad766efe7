package middleware

import (
	"context"
	"time"

	"github.com/io-da/dispatch"
)

// Logger defines an interface for logging at different severity levels.
// It is satisfied by *slog.Logger.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)
	// Info logs a message at info level.
	Info(msg string, args ...any)
	// Warn logs a message at warning level.
	Warn(msg string, args ...any)
	// Error logs a message at error level.
	Error(msg string, args ...any)
}

const (
	logMessageStart   = "dispatch: start"
	logMessageSuccess = "dispatch: success"
	logMessageCancel  = "dispatch: cancel"
	logMessageFailure = "dispatch: failure"
)

// Logging logs the start and the outcome of every dispatch.
// Start and success are logged at debug level, cancellation at warn and failure at error.
// Args are added to every message, after the command and correlation attributes.
func Logging(logger Logger, args ...any) dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
		attrs := []any{"command", string(cmd.Identifier())}
		if id := CorrelationID(ctx); id != "" {
			attrs = append(attrs, "correlation_id", id)
		}
		attrs = append(attrs, args...)

		logger.Debug(logMessageStart, attrs...)
		start := time.Now()

		data, err := next(ctx)

		attrs = append(attrs, "duration", time.Since(start))
		switch outcome(err) {
		case outcomeSuccess:
			logger.Debug(logMessageSuccess, attrs...)
		case outcomeCancel:
			logger.Warn(logMessageCancel, append(attrs, "error", err)...)
		default:
			logger.Error(logMessageFailure, append(attrs, "error", err)...)
		}
		return data, err
	})
}
