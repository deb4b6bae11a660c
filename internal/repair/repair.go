// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package repair rewrites a single PDF in place through the external fixer.
// The rewritten copy is staged as a hidden sibling of the source, validated,
// and renamed over the source; the source is never written to directly.
package repair

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/fix-pdfs/internal/locate"
	"github.com/pdiddy/fix-pdfs/pkg/types"
)

// minOutputSize is the smallest tool output accepted as a plausible PDF.
const minOutputSize = 10

// tempSuffix is appended to staged output names.
const tempSuffix = "." + locate.ToolName + "_tmp"

var (
	// ErrSubprocess marks a fixer invocation that exited non-zero or could not run.
	ErrSubprocess = errors.New("fixer failed")
	// ErrInvalidOutput marks a fixer run that succeeded but left no usable output.
	ErrInvalidOutput = errors.New("invalid/empty output")
	// ErrReplace marks a failure to swap the staged output over the source.
	ErrReplace = errors.New("replace failed")
)

// Repairer processes one PDF candidate.
type Repairer interface {
	Repair(ctx context.Context, path string) types.RepairOutcome
}

// Fixer runs the external tool against single files.
type Fixer struct {
	tool    string
	mode    types.FixMode
	dryRun  bool
	timeout time.Duration

	exec   executor
	rename func(oldpath, newpath string) error
}

// Option configures a Fixer.
type Option func(*Fixer)

// WithDryRun makes Repair report DRY-RUN without touching anything.
func WithDryRun(dryRun bool) Option {
	return func(f *Fixer) { f.dryRun = dryRun }
}

// WithTimeout bounds each tool invocation. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(f *Fixer) { f.timeout = d }
}

// NewFixer returns a Fixer invoking the tool at toolPath in the given mode.
func NewFixer(toolPath string, mode types.FixMode, opts ...Option) *Fixer {
	f := &Fixer{
		tool:   toolPath,
		mode:   mode,
		exec:   osExecutor{},
		rename: os.Rename,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// TempPath returns the staging path for src: a hidden sibling in the same
// directory, so the final rename never crosses a volume boundary.
func TempPath(src string) string {
	return filepath.Join(filepath.Dir(src), "."+filepath.Base(src)+tempSuffix)
}

// Args returns the tool arguments that rewrite src into dst for mode.
func Args(mode types.FixMode, src, dst string) ([]string, error) {
	switch mode {
	case types.ModeLinearize:
		return []string{"--linearize", src, dst}, nil
	case types.ModeDisableObjectStreams:
		return []string{"--object-streams=disable", src, dst}, nil
	default:
		return nil, fmt.Errorf("unknown fix mode %q", mode)
	}
}

// Repair rewrites path in place. On success the file at path holds exactly
// the tool's output; on failure it is left untouched and no staged file remains.
func (f *Fixer) Repair(ctx context.Context, path string) types.RepairOutcome {
	if f.dryRun {
		return types.RepairOutcome{Status: types.RepairDryRun}
	}
	if err := f.fix(ctx, path); err != nil {
		return types.RepairOutcome{Status: types.RepairFailed, Err: err}
	}
	return types.RepairOutcome{Changed: true, Status: types.RepairOK}
}

func (f *Fixer) fix(ctx context.Context, src string) (err error) {
	tmp := TempPath(src)
	args, err := Args(f.mode, src, tmp)
	if err != nil {
		return err
	}

	// Leftover from an interrupted run.
	_ = os.Remove(tmp)

	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	stdout, stderr, runErr := f.exec.Run(ctx, f.tool, args)
	if runErr != nil {
		return fmt.Errorf("%w: %s", ErrSubprocess, failureMessage(ctx, runErr, stdout, stderr))
	}

	info, statErr := os.Stat(tmp)
	if statErr != nil || !info.Mode().IsRegular() || info.Size() < minOutputSize {
		return ErrInvalidOutput
	}

	if srcInfo, statErr := os.Stat(src); statErr == nil {
		_ = os.Chmod(tmp, srcInfo.Mode().Perm())
	}

	if renameErr := f.rename(tmp, src); renameErr != nil {
		return fmt.Errorf("%w: %s may be open in another program: %v", ErrReplace, filepath.Base(src), renameErr)
	}
	return nil
}

// failureMessage picks the tool's diagnostic text: stderr, else stdout,
// else a description of how the process ended.
func failureMessage(ctx context.Context, runErr error, stdout, stderr []byte) string {
	if msg := strings.TrimSpace(string(stderr)); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(string(stdout)); msg != "" {
		return msg
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Sprintf("%s interrupted: %v", locate.ToolName, ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return fmt.Sprintf("%s exited with status %d", locate.ToolName, exitErr.ExitCode())
	}
	return runErr.Error()
}
