package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tsfix/internal/diag"
	"tsfix/internal/diagfmt"
	"tsfix/internal/tsc"
)

var checkCmd = &cobra.Command{
	Use:   "check [directory]",
	Short: "Report unused imports without modifying anything",
	Long: `Run the TypeScript compiler with --noUnusedLocals --noUnusedParameters
--noEmit and summarise every unused-import diagnostic per file. Source
files are never written by this command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	addCheckFlags(checkCmd)
}

// addCheckFlags is shared with the root command, which runs the same
// report when invoked bare.
func addCheckFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format value: %s", format)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	useColor, err := resolveColor(cmd)
	if err != nil {
		return err
	}

	bag, err := collectDiagnostics(cmd, dir, !quiet && format == "pretty")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return diagfmt.JSON(out, bag, diagfmt.JSONOpts{IncludeDiagnostics: true})
	case "short":
		diagfmt.Short(out, bag)
		return nil
	}

	diagfmt.Pretty(out, bag, diagfmt.PrettyOpts{Color: useColor})
	if bag.Len() > 0 {
		printManualFixNotice(out)
	}
	return nil
}

// collectDiagnostics runs the compiler and parses its stream. A
// non-zero compiler exit is normal when diagnostics exist; only a
// failure to launch the tool surfaces as an error. Reported paths are
// rebased onto dir, where the compiler ran.
func collectDiagnostics(cmd *cobra.Command, dir string, announce bool) (*diag.Bag, error) {
	opts, err := compilerOptions(dir)
	if err != nil {
		return nil, err
	}
	if announce {
		fmt.Fprintln(cmd.OutOrStdout(), "Analyzing unused imports...")
	}
	runner := tsc.NewCommandRunner(opts)
	output, err := runner.Diagnostics(cmd.Context(), dir)
	if err != nil {
		return nil, err
	}
	return diag.NewBag(diag.ResolveFiles(dir, diag.Parse(output))), nil
}

func printManualFixNotice(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out, "MANUAL FIX REQUIRED")
	fmt.Fprintln(out, "============================================================")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Blind rewriting of import statements is risky; review the list")
	fmt.Fprintln(out, "above first. Run 'tsfix fix' to apply the edits, or")
	fmt.Fprintln(out, "'tsfix fix --interactive' to pick them one by one.")
}
