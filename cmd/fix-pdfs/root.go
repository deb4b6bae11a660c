// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fix-pdfs/internal/config"
	"github.com/pdiddy/fix-pdfs/internal/fix"
	"github.com/pdiddy/fix-pdfs/internal/locate"
	"github.com/pdiddy/fix-pdfs/internal/repair"
	"github.com/pdiddy/fix-pdfs/internal/walk"
	"github.com/pdiddy/fix-pdfs/pkg/types"
)

// newRootCmd builds the fix-pdfs command with its own viper instance.
func newRootCmd() *cobra.Command {
	v := config.New()
	def := types.DefaultFixConfig()

	cmd := &cobra.Command{
		Use:   "fix-pdfs <root>",
		Short: "Repair PDFs in place with qpdf",
		Long: `fix-pdfs scans a directory tree for PDF files and rewrites each one in
place with qpdf, either linearized (default) or without compressed object
streams. The rewritten copy is staged next to the original and renamed over it
only when qpdf succeeds, so a failed repair never leaves a damaged file behind.

Recycle-bin, System Volume Information, .git, .svn, and __pycache__
directories are skipped.

Exit status is 0 when every file was repaired (or a dry run finished), 1 when
at least one file failed, and 2 when the root directory or qpdf is unusable.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, v, args[0])
		},
	}
	cmd.SetVersionTemplate("fix-pdfs {{.Version}}\n")

	flags := cmd.Flags()
	flags.String("config", "", "config file (default: ./fix-pdfs.yaml or ~/.config/fix-pdfs/fix-pdfs.yaml)")
	flags.String("tool-path", "", "path to the qpdf executable (default: search PATH)")
	flags.String("mode", string(def.Mode), "fix strategy: linearize or disable_object_streams")
	flags.Bool("dry-run", false, "list the PDFs that would be repaired without changing anything")
	flags.Bool("quiet", false, "suppress per-file log lines")
	flags.StringSlice("exclude", nil, "additional directory names to skip (repeatable)")
	flags.String("format", string(def.Format), "summary format: text or yaml")
	flags.Duration("timeout", 0, "per-file qpdf timeout (0 = no limit)")

	if err := config.BindFlags(v, flags); err != nil {
		panic(err)
	}
	return cmd
}

func runFix(cmd *cobra.Command, v *viper.Viper, rootArg string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	used, err := config.ReadFile(v, cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", used)
	}

	cfg, err := config.Load(v, rootArg)
	if err != nil {
		return err
	}

	root, err := fix.ResolveRoot(cfg.Root)
	if err != nil {
		return err
	}

	tool, err := locate.Tool(cfg.ToolPath)
	if err != nil {
		return err
	}

	fixer := repair.NewFixer(tool, cfg.Mode,
		repair.WithDryRun(cfg.DryRun),
		repair.WithTimeout(cfg.Timeout),
	)

	// Keep stdout machine-readable when the summary is YAML.
	var log io.Writer = cmd.OutOrStdout()
	if cfg.Format == types.SummaryYAML {
		log = cmd.ErrOrStderr()
	}

	result := fix.Batch(cmd.Context(), fixer, walk.New(cfg.ExcludeDirs...).PDFs(root), cfg.DryRun, cfg.Quiet, log)
	if err := fix.WriteSummary(cmd.OutOrStdout(), result, cfg.Format); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
	}
	return result.Err()
}
