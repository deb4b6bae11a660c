// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fix

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fix-pdfs/pkg/types"
)

// summaryDoc is the machine-readable summary layout.
type summaryDoc struct {
	Total       int  `yaml:"total"`
	Fixed       int  `yaml:"fixed"`
	Failed      int  `yaml:"failed"`
	WouldFix    int  `yaml:"would_fix"`
	DryRun      bool `yaml:"dry_run"`
	Interrupted bool `yaml:"interrupted,omitempty"`
}

// WriteSummary renders the end-of-run summary to w.
func WriteSummary(w io.Writer, r BatchResult, format types.SummaryFormat) error {
	if format == types.SummaryYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(summaryDoc{
			Total:       r.Total,
			Fixed:       r.Fixed,
			Failed:      r.Failed,
			WouldFix:    r.WouldFix,
			DryRun:      r.DryRun,
			Interrupted: r.Interrupted,
		}); err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		return enc.Close()
	}

	annotation := ""
	if r.DryRun {
		annotation = " (dry-run)"
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Summary ---")
	fmt.Fprintf(w, "Found:  %d\n", r.Total)
	fmt.Fprintf(w, "Fixed:  %d%s\n", r.Fixed, annotation)
	fmt.Fprintf(w, "Failed: %d\n", r.Failed)
	if r.Interrupted {
		fmt.Fprintln(w, "Interrupted before the walk finished.")
	}
	return nil
}
