// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fix drives a repair run: it validates the root directory, feeds
// every PDF candidate through a repairer, and tallies the outcomes.
package fix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/fix-pdfs/internal/repair"
	"github.com/pdiddy/fix-pdfs/pkg/types"
)

var (
	// ErrInvalidRoot is returned when the root is missing or not a directory.
	ErrInvalidRoot = errors.New("invalid root directory")
	// ErrFailures is returned by Result.Err when at least one file failed.
	ErrFailures = errors.New("repair failures")
	// ErrInterrupted is returned by Result.Err when the run was cancelled.
	ErrInterrupted = errors.New("interrupted")
)

// BatchResult holds the outcome counts of a run.
type BatchResult struct {
	Total    int
	Fixed    int
	Failed   int
	WouldFix int // dry-run candidates; never counted as fixed or failed

	DryRun      bool
	Interrupted bool
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Err summarizes the run as an error: nil when every file succeeded.
func (r BatchResult) Err() error {
	switch {
	case r.Interrupted:
		return fmt.Errorf("%w after %d file(s)", ErrInterrupted, r.Total)
	case r.HasFailures():
		return fmt.Errorf("%w: %d of %d file(s) failed", ErrFailures, r.Failed, r.Total)
	}
	return nil
}

// ResolveRoot expands a leading ~, makes root absolute, and checks that it
// is an existing directory.
func ResolveRoot(root string) (string, error) {
	if root == "~" || strings.HasPrefix(root, "~/") || strings.HasPrefix(root, `~\`) {
		if home, err := os.UserHomeDir(); err == nil {
			root = filepath.Join(home, root[1:])
		}
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrInvalidRoot, abs)
	}
	return abs, nil
}

// Batch repairs each path in turn. Unless quiet, one line per file is
// written to w. Per-file failures never stop the run; cancellation of ctx
// stops it before the next file.
func Batch(ctx context.Context, r repair.Repairer, paths iter.Seq[string], dryRun, quiet bool, w io.Writer) BatchResult {
	result := BatchResult{DryRun: dryRun}
	for path := range paths {
		if ctx.Err() != nil {
			break
		}

		out := r.Repair(ctx, path)
		result.Total++
		switch out.Status {
		case types.RepairOK:
			result.Fixed++
		case types.RepairDryRun:
			result.WouldFix++
		default:
			result.Failed++
		}

		if !quiet {
			fmt.Fprintf(w, "%s  ->  %s\n", path, out)
		}
	}
	result.Interrupted = ctx.Err() != nil
	return result
}
