package middleware

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/io-da/dispatch"
)

const (
	attrCommand       = "dispatch.command"
	attrCorrelationID = "dispatch.correlation_id"
	attrOutcome       = "dispatch.outcome"
)

// Tracing wraps the rest of the chain in a span named after the command.
// The span context is handed inward, so spans started by handlers become its children.
func Tracing(tracer trace.Tracer) dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
		attrs := []attribute.KeyValue{attribute.String(attrCommand, string(cmd.Identifier()))}
		if id := CorrelationID(ctx); id != "" {
			attrs = append(attrs, attribute.String(attrCorrelationID, id))
		}
		ctx, span := tracer.Start(ctx, "dispatch "+string(cmd.Identifier()), trace.WithAttributes(attrs...))
		defer span.End()

		data, err := next(ctx)

		span.SetAttributes(attribute.String(attrOutcome, outcome(err)))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return data, err
		}
		span.SetStatus(codes.Ok, "")
		return data, nil
	})
}
