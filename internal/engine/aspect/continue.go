package aspect

import (
	"context"

	"go.trai.ch/anvil/internal/core/ports"
)

// ContinueOnError returns an aspect that clears every task failure and reports it as a warning,
// letting the remaining tasks and targets of a run execute.
func ContinueOnError(logger ports.Logger) ports.Aspect {
	return &Funcs{
		PostExecuteFunc: func(_ context.Context, _ any, failure error) error {
			if failure != nil {
				logger.Warn("continuing after task failure: " + failure.Error())
			}
			return nil
		},
	}
}
