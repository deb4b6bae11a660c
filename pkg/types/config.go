// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared between the fix-pdfs CLI and
// its internal stages.
package types

import "time"

// FixMode selects how the external fixer rewrites a PDF.
type FixMode string

const (
	// ModeLinearize rewrites the file linearized for incremental rendering.
	ModeLinearize FixMode = "linearize"
	// ModeDisableObjectStreams rewrites the file without compressed object streams.
	ModeDisableObjectStreams FixMode = "disable_object_streams"
)

// SummaryFormat selects how the end-of-run summary is rendered.
type SummaryFormat string

const (
	SummaryText SummaryFormat = "text"
	SummaryYAML SummaryFormat = "yaml"
)

// FixConfig holds every setting of a single fix run. It is assembled from
// flags, environment, and an optional config file; nothing here is written back.
type FixConfig struct {
	// Root is the directory scanned recursively for PDFs.
	Root string `json:"root" yaml:"root" mapstructure:"root" validate:"required"`

	// ToolPath is an explicit path to the qpdf executable. Empty means search PATH.
	ToolPath string `json:"tool_path,omitempty" yaml:"tool_path,omitempty" mapstructure:"tool_path"`

	// Mode selects the fix strategy (default linearize).
	Mode FixMode `json:"mode" yaml:"mode" mapstructure:"mode" validate:"oneof=linearize disable_object_streams"`

	// DryRun reports candidates without invoking the tool or touching files.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`

	// Quiet suppresses per-file log lines; the summary is always printed.
	Quiet bool `json:"quiet" yaml:"quiet" mapstructure:"quiet"`

	// ExcludeDirs adds directory names to the built-in exclusion set.
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs,omitempty" mapstructure:"exclude_dirs" validate:"dive,required"`

	// Format selects the summary rendering: text or yaml.
	Format SummaryFormat `json:"format" yaml:"format" mapstructure:"format" validate:"oneof=text yaml"`

	// Timeout bounds a single tool invocation. Zero disables the limit.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`
}

// DefaultFixConfig returns the settings used when nothing is overridden.
func DefaultFixConfig() FixConfig {
	return FixConfig{
		Mode:   ModeLinearize,
		Format: SummaryText,
	}
}
