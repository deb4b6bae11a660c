// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package locate resolves the path of the external PDF fixer executable.
package locate

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ToolName is the executable searched for on PATH.
const ToolName = "qpdf"

// ErrToolNotFound is returned when the fixer cannot be resolved.
var ErrToolNotFound = errors.New("tool not found")

// finder abstracts filesystem and PATH lookups for testing.
type finder interface {
	LookPath(file string) (string, error)
	Stat(name string) (os.FileInfo, error)
}

// osFinder is the production finder backed by os and os/exec.
type osFinder struct{}

func (osFinder) LookPath(file string) (string, error) { return exec.LookPath(file) }

func (osFinder) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }

var defaultFinder finder = osFinder{}

// Tool returns the path of the fixer executable. When explicit is non-empty
// it must name an existing filesystem entry and is returned as an absolute
// path, so a bare name is never re-resolved against PATH; otherwise PATH is
// searched for ToolName.
func Tool(explicit string) (string, error) {
	return findTool(defaultFinder, explicit)
}

func findTool(f finder, explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", fmt.Errorf("%w: %s not found at %s: %v", ErrToolNotFound, ToolName, explicit, err)
		}
		if _, err := f.Stat(abs); err != nil {
			return "", fmt.Errorf("%w: %s not found at %s", ErrToolNotFound, ToolName, explicit)
		}
		return abs, nil
	}

	path, err := f.LookPath(ToolName)
	if err != nil {
		return "", fmt.Errorf(
			"%w: %s is not on PATH; install %s and make sure it is on PATH, or pass --tool-path /path/to/%s",
			ErrToolNotFound, ToolName, ToolName, ToolName,
		)
	}
	return path, nil
}
