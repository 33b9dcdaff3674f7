// Package main validates FEEN records read from files or standard input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/corentings/feen/internal/feencheck"
)

func main() {
	cfg, err := feencheck.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	if _, err := feencheck.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, feencheck.ErrInvalidRecords) {
			stop()
			os.Exit(1)
		}
		exitf("Error: %v", err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
