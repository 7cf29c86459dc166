package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"tsfix/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "tsfix [directory]",
	Short: "Find and remove unused TypeScript imports",
	Long: `tsfix runs the TypeScript compiler in check-only mode, collects its
unused-import diagnostics (TS6133, TS6192) and reports them per file.

Running tsfix bare only reports; no file is ever modified. Removing the
offending imports is a separate, explicit step: tsfix fix.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

// main registers subcommands and persistent flags, then executes the
// root command. The bare invocation behaves exactly like "tsfix check".
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	addCheckFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
