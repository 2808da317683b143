// internal/cmdutil/run.go
package cmdutil

import (
	"context"
	"errors"

	"altseed/internal/writers"
)

// Exit codes shared by every subcommand.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

// UsageError marks a failure caused by bad flags, arguments or config.
type UsageError struct{ Err error }

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a UsageError. nil stays nil.
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return UsageError{Err: err}
}

// ExitCode maps a run error to the process exit status.
func ExitCode(err error) int {
	var ue UsageError
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.As(err, &ue):
		return ExitUsage
	default:
		return ExitRuntime
	}
}
