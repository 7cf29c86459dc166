// Package fix rewrites source files in place to drop imports the
// compiler reported as unused. The edits are textual, line by line;
// nothing here understands the language beyond the shape of a
// single-line import statement.
package fix

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"tsfix/internal/diag"
)

// ErrNoDiagnostics is returned when Apply receives nothing to fix.
var ErrNoDiagnostics = errors.New("no unused imports to fix")

// Options configures an Apply run.
type Options struct {
	// DryRun computes every change without writing any file.
	DryRun bool
}

// FileChange summarises modifications performed on one file.
type FileChange struct {
	Path      string
	EditCount int
}

// SkippedFile records a file that could not be fixed, with a reason.
type SkippedFile struct {
	Path   string
	Reason string
}

// ApplyResult aggregates changed and skipped files.
type ApplyResult struct {
	Changed []FileChange
	Skipped []SkippedFile
}

// Apply groups diagnostics per file and rewrites each file in turn,
// in ascending path order. A failure on one file is recorded as
// skipped and does not stop the others. There is no rollback: an I/O
// error mid-write can leave that one file inconsistent.
func Apply(diagnostics []diag.Diagnostic, opts Options) (*ApplyResult, error) {
	result := &ApplyResult{
		Changed: make([]FileChange, 0),
		Skipped: make([]SkippedFile, 0),
	}
	if len(diagnostics) == 0 {
		return result, ErrNoDiagnostics
	}

	bag := diag.NewBag(diagnostics)
	byFile := bag.ByFile()
	for _, path := range bag.Files() {
		records := byFile[path]
		changed, err := rewriteFile(path, records, opts.DryRun)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFile{
				Path:   path,
				Reason: err.Error(),
			})
			continue
		}
		if changed {
			result.Changed = append(result.Changed, FileChange{
				Path:      path,
				EditCount: len(records),
			})
		}
	}
	return result, nil
}

// rewriteFile applies every diagnostic for one file and reports
// whether the content actually changed.
func rewriteFile(path string, records []diag.Diagnostic, dryRun bool) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	lines := splitLines(string(content))

	// Plan: 0-based line index -> identifiers to strip, input order.
	plan := make(map[int][]string)
	for _, r := range records {
		idx := int(r.Line) - 1
		if idx < 0 || idx >= len(lines) {
			return false, fmt.Errorf("line %d out of range (%d lines)", r.Line, len(lines))
		}
		plan[idx] = append(plan[idx], r.Import)
	}

	// Descending index order. Deletions blank lines rather than
	// removing them, so indices never actually shift, but the
	// processing order is part of the contract and stays this way.
	indices := make([]int, 0, len(plan))
	for idx := range plan {
		indices = append(indices, idx)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))

	for _, idx := range indices {
		names := plan[idx]
		if containsAll(names) {
			lines[idx] = ""
			continue
		}
		line := lines[idx]
		for _, name := range names {
			rewritten, removeLine := removeImport(line, name)
			if removeLine {
				line = ""
				break
			}
			line = rewritten
		}
		lines[idx] = line
	}

	lines = collapseBlankRuns(lines)

	rewritten := strings.Join(lines, "")
	if rewritten == string(content) {
		return false, nil
	}
	if dryRun {
		return true, nil
	}
	return true, os.WriteFile(path, []byte(rewritten), 0o644)
}

// splitLines splits keeping each line's terminator attached, so the
// file round-trips byte for byte when nothing changes. A blanked line
// loses its terminator with the rest of the line and disappears from
// the output entirely.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func containsAll(names []string) bool {
	for _, n := range names {
		if n == diag.ImportAll {
			return true
		}
	}
	return false
}
