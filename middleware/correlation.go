package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/io-da/dispatch"
)

type correlationIDKey struct{}

// WithCorrelationID returns a context carrying the correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the correlation ID carried by the context, or "".
func CorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// Correlation ensures every dispatch carries a correlation ID.
// An ID already present in the context is kept, otherwise a new UUID is assigned.
func Correlation() dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, _ dispatch.Command, next dispatch.Next) (any, error) {
		if CorrelationID(ctx) == "" {
			ctx = WithCorrelationID(ctx, uuid.NewString())
		}
		return next(ctx)
	})
}
