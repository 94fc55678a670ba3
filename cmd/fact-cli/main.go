package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/manas95826/fact-cli/cli"
	"github.com/manas95826/fact-cli/config"
)

func main() {
	// Ctrl+C or SIGTERM cancels the context shared by every mode.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %s\n", err)
	}

	err := cli.NewRootCmd(cli.Options{}).ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
