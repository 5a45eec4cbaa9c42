package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const doc = `flutterlint finds hardcoded user-facing strings and raw asset paths
in Flutter widget code and rewrites asset paths to the generated asset classes.

It consumes *.ast.json dump documents produced by the Dart front end; parsing
and type resolution happen there, this tool owns the rules and the rewrites.`

var rootCmd = &cobra.Command{
	Use:           "flutterlint",
	Short:         "Linter for hardcoded strings and asset paths in Flutter code",
	Long:          doc,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errFindings marks a run that completed but reported findings. The process
// exits 1 without an extra error line, the findings are the message.
var errFindings = errors.New("findings reported")

func main() {
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)

	rootCmd.PersistentFlags().String("config", "", "path to .flutterlint.yaml (default: nearest up the tree)")
	rootCmd.PersistentFlags().String("format", "", "output format (pretty|json|short)")
	rootCmd.PersistentFlags().String("paths", "", "path rendering (auto|relative|absolute)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "cap on collected findings")
	rootCmd.PersistentFlags().Bool("verbose", false, "report per-file progress to stderr")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errFindings) {
			fmt.Fprintln(os.Stderr, "flutterlint:", err)
		}
		os.Exit(1)
	}
}
