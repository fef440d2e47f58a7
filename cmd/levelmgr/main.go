// Package main is the entry point for the levelmgr command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/level-manager/internal/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.IsInternal(err) {
			slog.Error("command failed", "error", err)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.Describe(err))
		cancel()
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
