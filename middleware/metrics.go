package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/io-da/dispatch"
)

const (
	metricCommands = "dispatch.commands"
	metricDuration = "dispatch.command.duration"
	metricInFlight = "dispatch.commands.inflight"
)

// Metrics records the count, duration and in-flight number of dispatched commands.
// Count and duration carry the command identifier and the outcome (success, failure or cancel).
func Metrics(meter metric.Meter) (dispatch.Step, error) {
	commands, err := meter.Int64Counter(metricCommands,
		metric.WithDescription("Number of dispatched commands"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram(metricDuration,
		metric.WithDescription("Duration of dispatched commands"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	inFlight, err := meter.Int64UpDownCounter(metricInFlight,
		metric.WithDescription("Number of commands being dispatched"))
	if err != nil {
		return nil, err
	}

	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
		command := attribute.String(attrCommand, string(cmd.Identifier()))
		inFlight.Add(ctx, 1, metric.WithAttributes(command))
		start := time.Now()

		data, err := next(ctx)

		elapsed := time.Since(start)
		inFlight.Add(ctx, -1, metric.WithAttributes(command))
		attrs := metric.WithAttributes(command, attribute.String(attrOutcome, outcome(err)))
		commands.Add(ctx, 1, attrs)
		duration.Record(ctx, elapsed.Seconds(), attrs)
		return data, err
	}), nil
}
