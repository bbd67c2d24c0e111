// Command formkit evaluates the constraint validity of HTML form controls.
//
// Usage:
//
//	# Check a page and print a table of invalid controls
//	formkit check signup.html
//
//	# Check a snapshot and fail the build when anything is invalid
//	formkit check --strict --format json form.yaml
//
//	# Re-check on every save
//	formkit check --watch signup.html
//
//	# Serve the HTTP API (configured through the environment)
//	formkit serve
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps command errors to process exit codes: 1 for failures,
// 2 when a strict check found invalid controls.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	if errors.Is(err, errInvalidControls) {
		return 2
	}
	return 1
}
