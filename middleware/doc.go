// Package middleware provides composable pipeline steps for the dispatcher.
//
// Each constructor returns a dispatch.Step wrapping the rest of the chain with
// additional behavior such as correlation, cancellation, panic recovery,
// validation, logging, tracing, metrics and idempotency.
//
// Steps run in the order they are given to dispatch.WithSteps, the first one
// being the outermost:
//
//	d, err := dispatch.New(handlers, dispatch.WithSteps(
//		middleware.Recover(),
//		middleware.Correlation(),
//		middleware.Logging(slog.Default()),
//		middleware.Validate(),
//		middleware.Timeout(5*time.Second),
//	))
package middleware
