// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package walk yields PDF candidates found under a directory tree.
package walk

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pdiddy/fix-pdfs/internal/detect"
)

// defaultExcludes lists lowercase directory names that are never descended into.
var defaultExcludes = []string{
	"$recycle.bin",
	"system volume information",
	".git",
	".svn",
	"__pycache__",
}

// Walker traverses a tree depth-first, pruning excluded directories.
type Walker struct {
	excludes map[string]bool
	isPDF    func(path string) bool
}

// DefaultExcludes returns the built-in excluded directory names.
func DefaultExcludes() []string {
	return slices.Clone(defaultExcludes)
}

// New returns a Walker excluding DefaultExcludes plus extra. Names are
// compared case-insensitively.
func New(extra ...string) *Walker {
	w := &Walker{
		excludes: make(map[string]bool, len(defaultExcludes)+len(extra)),
		isPDF:    detect.IsPDF,
	}
	for _, name := range defaultExcludes {
		w.excludes[name] = true
	}
	for _, name := range extra {
		if name = strings.TrimSpace(name); name != "" {
			w.excludes[strings.ToLower(name)] = true
		}
	}
	return w
}

// Excluded reports whether a directory with the given base name is pruned.
func (w *Walker) Excluded(name string) bool {
	return w.excludes[strings.ToLower(name)]
}

// PDFs returns a lazy sequence of PDF paths under root. Each range over the
// sequence starts a fresh traversal. The root itself is never pruned, and
// entries that cannot be read are skipped.
func (w *Walker) PDFs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entry: keep walking the rest of the tree.
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				if path != root && w.Excluded(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || !w.isPDF(path) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
