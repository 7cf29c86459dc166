// Package diag holds the diagnostic records extracted from TypeScript
// compiler output and their grouping for reports.
package diag

import "fmt"

// ImportAll is the sentinel import name meaning every import in the
// declaration is unused, so the whole source line must be removed
// instead of narrowing the import list.
const ImportAll = "__ALL__"

// Diagnostic is one unused-import finding reported by the compiler.
type Diagnostic struct {
	// File is the path exactly as the compiler printed it, relative to
	// the directory the compiler ran in.
	File string
	// Line is 1-based.
	Line uint32
	// Col is parsed from the output but not used by the editor.
	Col uint32
	// Import is the unused identifier, or ImportAll.
	Import string
}

// RemovesLine reports whether the diagnostic covers the whole import
// declaration rather than a single name.
func (d Diagnostic) RemovesLine() bool {
	return d.Import == ImportAll
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Import)
}
