// Package config loads the .flutterlint.yaml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project tree.
const FileName = ".flutterlint.yaml"

// DefaultMaxDiagnostics caps a single run unless the config overrides it.
const DefaultMaxDiagnostics = 256

// Rules holds per-rule enable switches. Both rules run by default.
type Rules struct {
	HardcodedStrings *bool `yaml:"hardcoded_strings"`
	HardcodedAssets  *bool `yaml:"hardcoded_assets"`
}

// Config is the full project configuration.
type Config struct {
	Rules          Rules    `yaml:"rules"`
	Format         Format   `yaml:"format"`
	Paths          PathMode `yaml:"paths"`
	MaxDiagnostics int      `yaml:"max_diagnostics"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Format:         FormatPretty,
		Paths:          PathModeAuto,
		MaxDiagnostics: DefaultMaxDiagnostics,
	}
}

// StringsEnabled reports whether the hardcoded-strings rule runs.
func (c Config) StringsEnabled() bool {
	return c.Rules.HardcodedStrings == nil || *c.Rules.HardcodedStrings
}

// AssetsEnabled reports whether the hardcoded-assets rule runs.
func (c Config) AssetsEnabled() bool {
	return c.Rules.HardcodedAssets == nil || *c.Rules.HardcodedAssets
}

// Load reads and parses the configuration file at path. Fields absent from
// the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return Default(), fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes configuration bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}

	if cfg.Format == FormatInvalid {
		cfg.Format = FormatPretty
	}
	if cfg.Paths == PathModeInvalid {
		cfg.Paths = PathModeAuto
	}
	if cfg.MaxDiagnostics <= 0 {
		cfg.MaxDiagnostics = DefaultMaxDiagnostics
	}
	return cfg, nil
}

// Locate walks from dir toward the filesystem root looking for FileName.
// It returns the empty string when no configuration file exists.
func Locate(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
