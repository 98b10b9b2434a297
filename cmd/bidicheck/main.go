// Package main provides the CLI entrypoint for bidicheck.
//
// bidicheck reports which named types in a set of Go packages satisfy the
// bidirectional mapping contract:
//   - Loads packages (go/types) and walks each type's embedding chain
//   - Reports conforming, partially conforming and deferred types
//   - Optionally fails on partial conformance for use in CI
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cliApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
