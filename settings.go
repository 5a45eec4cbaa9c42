package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quangtuyen1993/hardcoded-strings/internal/config"
)

// resolveConfig builds the effective configuration: file first (explicit
// --config or the nearest .flutterlint.yaml), then flag overrides on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Root().PersistentFlags()

	var cfg config.Config
	explicit, err := flags.GetString("config")
	if err != nil {
		return cfg, err
	}

	switch {
	case explicit != "":
		cfg, err = config.Load(explicit)
		if err != nil {
			return cfg, err
		}
	default:
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			wd = "."
		}
		if found := config.Locate(wd); found != "" {
			cfg, err = config.Load(found)
			if err != nil {
				return cfg, err
			}
		} else {
			cfg = config.Default()
		}
	}

	if format, err := flags.GetString("format"); err != nil {
		return cfg, err
	} else if format != "" {
		if err := cfg.Format.UnmarshalText([]byte(format)); err != nil {
			return cfg, err
		}
	}

	if paths, err := flags.GetString("paths"); err != nil {
		return cfg, err
	} else if paths != "" {
		if err := cfg.Paths.UnmarshalText([]byte(paths)); err != nil {
			return cfg, err
		}
	}

	if maxDiags, err := flags.GetInt("max-diagnostics"); err != nil {
		return cfg, err
	} else if maxDiags > 0 {
		cfg.MaxDiagnostics = maxDiags
	}

	return cfg, nil
}

// progressWriter returns the sink for verbose per-file lines.
func progressWriter(cmd *cobra.Command) io.Writer {
	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil || !verbose {
		return io.Discard
	}
	return os.Stderr
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}
