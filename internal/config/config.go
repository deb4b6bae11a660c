// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config assembles a FixConfig from flags, environment, and an
// optional YAML file, and validates it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/fix-pdfs/pkg/types"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. FIX_PDFS_TOOL_PATH.
	EnvPrefix = "FIX_PDFS"
	// FileName is the config file base name searched when --config is not given.
	FileName = "fix-pdfs"
)

// Config keys.
const (
	KeyToolPath    = "tool_path"
	KeyMode        = "mode"
	KeyDryRun      = "dry_run"
	KeyQuiet       = "quiet"
	KeyExcludeDirs = "exclude_dirs"
	KeyFormat      = "format"
	KeyTimeout     = "timeout"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"tool-path": KeyToolPath,
	"mode":      KeyMode,
	"dry-run":   KeyDryRun,
	"quiet":     KeyQuiet,
	"exclude":   KeyExcludeDirs,
	"format":    KeyFormat,
	"timeout":   KeyTimeout,
}

var validate = newValidator()

// newValidator reports fields by their config key rather than Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	def := types.DefaultFixConfig()
	v.SetDefault(KeyToolPath, def.ToolPath)
	v.SetDefault(KeyMode, string(def.Mode))
	v.SetDefault(KeyDryRun, def.DryRun)
	v.SetDefault(KeyQuiet, def.Quiet)
	v.SetDefault(KeyExcludeDirs, []string{})
	v.SetDefault(KeyFormat, string(def.Format))
	v.SetDefault(KeyTimeout, def.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds every known flag present in fs to its config key.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// ReadFile loads the config file. An explicit path must be readable; without
// one, ./fix-pdfs.yaml and ~/.config/fix-pdfs/fix-pdfs.yaml are tried and a
// missing file is not an error. It returns the file used, if any.
func ReadFile(v *viper.Viper, explicit string) (string, error) {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading config file %s: %w", explicit, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Load builds and validates the run configuration for root.
func Load(v *viper.Viper, root string) (types.FixConfig, error) {
	cfg := types.DefaultFixConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return types.FixConfig{}, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Root = root
	cfg.Mode = types.FixMode(strings.ToLower(string(cfg.Mode)))
	cfg.Format = types.SummaryFormat(strings.ToLower(string(cfg.Format)))

	if err := Validate(cfg); err != nil {
		return types.FixConfig{}, err
	}
	return cfg, nil
}

// Validate checks cfg against its struct constraints.
func Validate(cfg types.FixConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s %q must be one of: %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must not be negative", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag())
	}
}
