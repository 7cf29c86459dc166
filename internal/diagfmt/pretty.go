// Package diagfmt renders unused-import reports in the formats the
// CLI offers.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tsfix/internal/diag"
)

// Pretty writes the per-file summary: total count, then one line per
// affected file in ascending path order.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	okColor := color.New(color.FgGreen, color.Bold)
	countColor := color.New(color.FgYellow, color.Bold)
	if !opts.Color {
		okColor.DisableColor()
		countColor.DisableColor()
	}

	if bag.Len() == 0 {
		fmt.Fprintf(w, "%s No unused imports found!\n", okColor.Sprint("✓"))
		return
	}

	byFile := bag.ByFile()
	files := bag.Files()
	fmt.Fprintf(w, "Found %s unused imports in %s files\n",
		countColor.Sprint(bag.Len()), countColor.Sprint(len(files)))
	fmt.Fprintln(w, "\nFiles to fix:")
	for _, path := range files {
		fmt.Fprintf(w, "  - %s (%d issues)\n", path, len(byFile[path]))
	}
}

// Short writes one line per diagnostic, grep-friendly:
// path:line: name (or the whole-declaration marker).
func Short(w io.Writer, bag *diag.Bag) {
	for _, d := range bag.Items() {
		if d.RemovesLine() {
			fmt.Fprintf(w, "%s:%d: all imports unused\n", d.File, d.Line)
			continue
		}
		fmt.Fprintf(w, "%s:%d: '%s' is unused\n", d.File, d.Line, d.Import)
	}
}
