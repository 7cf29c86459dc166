package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tsfix/internal/diag"
	"tsfix/internal/fix"
	"tsfix/internal/tsc"
	"tsfix/internal/ui"
)

var fixCmd = &cobra.Command{
	Use:   "fix [directory]",
	Short: "Remove unused imports from the reported files",
	Long: `Collect unused-import diagnostics and rewrite the affected files in
place: named imports are narrowed, fully-unused declarations are
deleted, and runs of blank lines are collapsed to one.

The edits are textual; multi-line and aliased import forms are left to
the compiler to re-report. Prefer --dry-run or --interactive first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "show planned changes without writing files")
	fixCmd.Flags().String("ui", "off", "review UI mode (auto|on|off)")
	fixCmd.Flags().Bool("interactive", false, "review each edit in a terminal UI before applying (same as --ui on)")
}

func runFix(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	if interactive {
		if cmd.Flags().Changed("ui") && mode == uiModeOff {
			return fmt.Errorf("--interactive conflicts with --ui off")
		}
		mode = uiModeOn
	}

	if shouldUseTUI(mode) {
		if dryRun {
			return fmt.Errorf("the review UI and --dry-run are mutually exclusive")
		}
		return runFixInteractive(cmd, dir)
	}

	bag, err := collectDiagnostics(cmd, dir, !quiet)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if bag.Len() == 0 {
		fmt.Fprintln(out, "✓ No unused imports found!")
		return nil
	}

	res, err := fix.Apply(bag.Items(), fix.Options{DryRun: dryRun})
	return printApplyResult(out, res, err, dryRun)
}

// runFixInteractive collects diagnostics behind a spinner, lets the
// user accept or skip each proposed edit, and applies only what was
// accepted.
func runFixInteractive(cmd *cobra.Command, dir string) error {
	opts, err := compilerOptions(dir)
	if err != nil {
		return err
	}
	runner := tsc.NewCommandRunner(opts)

	model := ui.NewReviewModel(func() ([]diag.Diagnostic, error) {
		output, err := runner.Diagnostics(cmd.Context(), dir)
		if err != nil {
			return nil, err
		}
		return diag.ResolveFiles(dir, diag.Parse(output)), nil
	})

	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	finalModel, err := program.Run()
	if err != nil {
		return err
	}
	review, ok := finalModel.(*ui.ReviewModel)
	if !ok {
		return fmt.Errorf("unexpected model type %T", finalModel)
	}
	if review.Err() != nil {
		return review.Err()
	}

	out := cmd.OutOrStdout()
	if review.Aborted() {
		fmt.Fprintln(out, "Aborted, no files modified.")
		return nil
	}
	accepted := review.Accepted()
	if len(accepted) == 0 {
		fmt.Fprintln(out, "✓ No unused imports found!")
		return nil
	}

	res, err := fix.Apply(accepted, fix.Options{})
	return printApplyResult(out, res, err, false)
}

func printApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Changed) > 0 {
		if dryRun {
			fmt.Fprintf(out, "Would update %d file(s):\n", len(res.Changed))
		} else {
			fmt.Fprintf(out, "Updated %d file(s):\n", len(res.Changed))
		}
		for _, change := range res.Changed {
			fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped files:")
		for _, skip := range res.Skipped {
			fmt.Fprintf(out, "  %s: %s\n", skip.Path, skip.Reason)
		}
	}

	if applyErr != nil {
		return applyErr
	}
	if len(res.Changed) == 0 && len(res.Skipped) == 0 {
		fmt.Fprintln(out, "Nothing to change.")
	}
	return nil
}
