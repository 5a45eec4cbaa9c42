package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quangtuyen1993/hardcoded-strings/internal/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <dump.ast.json|directory>...",
	Short: "Report hardcoded strings and asset paths",
	Long: `Check runs the rules over the given dump documents and prints every
finding. The exit code is 1 when findings exist, 0 on a clean run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	result, err := analyzeTargets(args, cfg, progressWriter(cmd))
	if err != nil {
		return err
	}

	diags := result.Bag.Items()
	if err := output.Render(os.Stdout, cfg.Format, diags, result.FileSet, workingDir(), cfg.Paths); err != nil {
		return err
	}

	if len(diags) > 0 {
		return errFindings
	}
	return nil
}
