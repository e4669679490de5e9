package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/keiv-fly/calc-repo-lines/cmd"
)

// exitInterrupted is the conventional status for a run stopped by SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.Execute(ctx)
	interrupted := ctx.Err() != nil
	stop()

	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if interrupted {
		os.Exit(exitInterrupted)
	}
	// A failed clone exits with git's own status.
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		os.Exit(coded.ExitCode())
	}
	os.Exit(1)
}
