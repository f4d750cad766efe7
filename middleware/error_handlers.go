package middleware

import (
	"context"

	"github.com/io-da/dispatch"
)

// ErrorHandlers hands every error of the rest of the chain to the error handlers.
// The error is returned unchanged.
func ErrorHandlers(hdls ...dispatch.ErrorHandler) dispatch.Step {
	return dispatch.StepFunc(func(ctx context.Context, cmd dispatch.Command, next dispatch.Next) (any, error) {
		data, err := next(ctx)
		if err != nil {
			for _, errHdl := range hdls {
				errHdl.Handle(cmd, err)
			}
		}
		return data, err
	})
}
