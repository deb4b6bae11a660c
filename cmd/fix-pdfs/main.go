// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the fix-pdfs CLI. It walks a directory
// tree and rewrites every PDF in place through qpdf, replacing each file only
// when the rewrite succeeds.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pdiddy/fix-pdfs/internal/fix"
)

// version is set at build time via ldflags.
var version = "dev"

// Exit statuses.
const (
	exitOK           = 0
	exitFailures     = 1
	exitPrecondition = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return exitCode(cmd.ExecuteContext(ctx), stderr)
}

// exitCode maps a command error to an exit status. Per-file failures were
// already reported in the summary; anything else failed before the walk.
func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, fix.ErrFailures), errors.Is(err, fix.ErrInterrupted):
		return exitFailures
	default:
		fmt.Fprintln(stderr, err)
		return exitPrecondition
	}
}
