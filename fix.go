package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quangtuyen1993/hardcoded-strings/internal/fixer"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <dump.ast.json|directory>...",
	Short: "Rewrite hardcoded asset paths to generated asset references",
	Long: `Fix runs the same analysis as check and applies every available fix
whose target file still matches the analyzed content. Files that changed since
the dump was produced are left alone and reported as skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "show what would change without writing files")
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}

	result, err := analyzeTargets(args, cfg, progressWriter(cmd))
	if err != nil {
		return err
	}

	applied, applyErr := fixer.Apply(result.FileSet, result.Bag.Items(), fixer.Options{DryRun: dryRun})
	if applyErr != nil && !errors.Is(applyErr, fixer.ErrNoFixes) {
		return applyErr
	}

	return reportApplyResult(applied, dryRun, errors.Is(applyErr, fixer.ErrNoFixes))
}

func reportApplyResult(result *fixer.Result, dryRun, noFixes bool) error {
	for _, skip := range result.Skipped {
		fmt.Fprintf(os.Stderr, "skipped %q: %s\n", skip.Title, skip.Reason)
	}

	if noFixes {
		fmt.Println("no applicable fixes")
		return nil
	}

	prefix := "fixed"
	if dryRun {
		prefix = "would fix"
	}
	for _, change := range result.Changes {
		edits := "edits"
		if change.EditCount == 1 {
			edits = "edit"
		}
		fmt.Printf("%s %s (%d %s)\n", prefix, change.Path, change.EditCount, edits)
	}
	fmt.Printf("%d applied, %d skipped\n", len(result.Applied), len(result.Skipped))
	return nil
}
