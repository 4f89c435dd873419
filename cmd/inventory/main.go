// Package main is the entry point of the interactive inventory tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abgdnv/inventory/internal/inventory/cli"
)

func main() {
	// Cancel the session on Ctrl+C or SIGTERM; the store is still released on the way out
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	err := cli.NewRootCommand().ExecuteContext(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
