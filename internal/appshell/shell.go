// Package appshell wires a command's run function to the process: signals,
// standard streams and the exit code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	os.Exit(runMain(run, os.Args[1:], os.Stdout, os.Stderr))
}

func runMain(run func(context.Context, []string, io.Writer, io.Writer) int, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// an interrupted run never reports success
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
