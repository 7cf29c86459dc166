package diag

import "path/filepath"

// ResolveFiles rebases relative diagnostic paths onto the directory
// the compiler ran in. The compiler reports paths relative to its own
// working directory, so without this step the editor would open (and
// rewrite) same-named files relative to wherever tsfix was launched.
// Absolute paths pass through untouched.
func ResolveFiles(dir string, items []Diagnostic) []Diagnostic {
	if dir == "" || dir == "." {
		return items
	}
	resolved := make([]Diagnostic, len(items))
	for i, d := range items {
		if !filepath.IsAbs(d.File) {
			d.File = filepath.Join(dir, d.File)
		}
		resolved[i] = d
	}
	return resolved
}
