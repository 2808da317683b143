// Package appshell owns process concerns: signals, argv and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// Main runs run under a context cancelled by SIGINT/SIGTERM and exits with
// its code. A run that was interrupted but reported success exits 130.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, run))
}

// Run is Main without the process exit.
func Run(parent context.Context, argv []string, stdout, stderr io.Writer, run func(context.Context, []string, io.Writer, io.Writer) int) int {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
