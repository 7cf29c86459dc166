package fix

import (
	"regexp"
	"strings"
)

// braceImportRe matches the named-import clause on a single line:
//
//	import { A, B, C } from './module';
//
// Multi-line declarations, aliased names and mixed default+named forms
// are outside what line-oriented matching can handle; the compiler
// will re-report anything left behind.
var braceImportRe = regexp.MustCompile(`import\s*\{\s*([^}]+)\s*\}\s*from`)

// removeImport strips one identifier from an import line. It returns
// the rewritten line, or removeLine=true when the whole line has to
// go: either the named list became empty, or the line is a
// default/namespace import form that cannot be narrowed.
func removeImport(line, name string) (rewritten string, removeLine bool) {
	if loc := braceImportRe.FindStringSubmatchIndex(line); loc != nil {
		names := strings.Split(line[loc[2]:loc[3]], ",")
		kept := names[:0]
		for _, n := range names {
			if trimmed := strings.TrimSpace(n); trimmed != name {
				kept = append(kept, trimmed)
			}
		}
		if len(kept) == 0 {
			return "", true
		}
		return line[:loc[0]] + "import { " + strings.Join(kept, ", ") + " } from" + line[loc[1]:], false
	}

	// Coarse fallback for non-brace forms. This can false-positive
	// when the identifier happens to appear in a string literal on the
	// same line; the tool accepts that risk in exchange for catching
	// `import Name from '...'` without parsing the language.
	if strings.Contains(line, name) && strings.Contains(line, "from") {
		return "", true
	}

	return line, false
}

// collapseBlankRuns keeps at most one blank line per run of
// consecutive blank (or deleted) lines. It runs over the whole file,
// not just edited regions, so pre-existing double blanks are squeezed
// too. Non-blank lines are never touched.
func collapseBlankRuns(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	prevBlank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if !prevBlank {
				cleaned = append(cleaned, line)
			}
			prevBlank = true
			continue
		}
		cleaned = append(cleaned, line)
		prevBlank = false
	}
	return cleaned
}
