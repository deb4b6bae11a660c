// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fix-pdfs/pkg/types"
)

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("fix-pdfs", pflag.ContinueOnError)
	fs.String("tool-path", "", "")
	fs.String("mode", string(types.ModeLinearize), "")
	fs.Bool("dry-run", false, "")
	fs.Bool("quiet", false, "")
	fs.StringSlice("exclude", nil, "")
	fs.String("format", string(types.SummaryText), "")
	fs.Duration("timeout", 0, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New(), "/data")
	require.NoError(t, err)

	assert.Equal(t, "/data", cfg.Root)
	assert.Equal(t, types.ModeLinearize, cfg.Mode)
	assert.Equal(t, types.SummaryText, cfg.Format)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.ToolPath)
	assert.Empty(t, cfg.ExcludeDirs)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadFromFlags(t *testing.T) {
	v := New()
	fs := newFlagSet()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{
		"--tool-path", "/opt/qpdf/bin/qpdf",
		"--mode", "disable_object_streams",
		"--dry-run",
		"--quiet",
		"--exclude", "node_modules",
		"--exclude", "Archive",
		"--format", "yaml",
		"--timeout", "90s",
	}))

	cfg, err := Load(v, "/data")
	require.NoError(t, err)

	assert.Equal(t, "/opt/qpdf/bin/qpdf", cfg.ToolPath)
	assert.Equal(t, types.ModeDisableObjectStreams, cfg.Mode)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, []string{"node_modules", "Archive"}, cfg.ExcludeDirs)
	assert.Equal(t, types.SummaryYAML, cfg.Format)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FIX_PDFS_MODE", "disable_object_streams")
	t.Setenv("FIX_PDFS_TOOL_PATH", "/usr/local/bin/qpdf")
	t.Setenv("FIX_PDFS_QUIET", "true")

	v := New()
	fs := newFlagSet()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(v, "/data")
	require.NoError(t, err)
	assert.Equal(t, types.ModeDisableObjectStreams, cfg.Mode)
	assert.Equal(t, "/usr/local/bin/qpdf", cfg.ToolPath)
	assert.True(t, cfg.Quiet)
}

func TestFlagOverridesEnv(t *testing.T) {
	t.Setenv("FIX_PDFS_MODE", "disable_object_streams")

	v := New()
	fs := newFlagSet()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--mode", "linearize"}))

	cfg, err := Load(v, "/data")
	require.NoError(t, err)
	assert.Equal(t, types.ModeLinearize, cfg.Mode)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fix-pdfs.yaml")
	content := "mode: disable_object_streams\nexclude_dirs:\n  - node_modules\n  - vendor\ntimeout: 2m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := New()
	used, err := ReadFile(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v, "/data")
	require.NoError(t, err)
	assert.Equal(t, types.ModeDisableObjectStreams, cfg.Mode)
	assert.Equal(t, []string{"node_modules", "vendor"}, cfg.ExcludeDirs)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}

func TestReadFileExplicitMissing(t *testing.T) {
	_, err := ReadFile(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestReadFileSearchMissingIsNotError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	used, err := ReadFile(New(), "")
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  any
		root   string
		errMsg string
	}{
		{"unknown mode", KeyMode, "compress", "/data", `mode "compress" must be one of: linearize, disable_object_streams`},
		{"unknown format", KeyFormat, "json", "/data", "format"},
		{"negative timeout", KeyTimeout, -time.Second, "/data", "timeout must not be negative"},
		{"empty root", KeyMode, "linearize", "", "root is required"},
		{"blank exclude entry", KeyExcludeDirs, []string{"ok", ""}, "/data", "exclude_dirs"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Set(tt.key, tt.value)

			_, err := Load(v, tt.root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadNormalizesCase(t *testing.T) {
	v := New()
	v.Set(KeyMode, "LINEARIZE")
	v.Set(KeyFormat, "YAML")

	cfg, err := Load(v, "/data")
	require.NoError(t, err)
	assert.Equal(t, types.ModeLinearize, cfg.Mode)
	assert.Equal(t, types.SummaryYAML, cfg.Format)
}
