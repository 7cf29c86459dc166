package diag

import "sort"

// Bag accumulates diagnostics from one compiler run and answers the
// grouping questions the report and the editor ask.
type Bag struct {
	items []Diagnostic
}

func NewBag(items []Diagnostic) *Bag {
	return &Bag{items: items}
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a read-only view of the diagnostics in input order.
// Do not modify the returned slice.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// ByFile groups diagnostics by file path, preserving input order
// within each file.
func (b *Bag) ByFile() map[string][]Diagnostic {
	grouped := make(map[string][]Diagnostic)
	for _, d := range b.items {
		grouped[d.File] = append(grouped[d.File], d)
	}
	return grouped
}

// Files returns the distinct file paths in ascending order, for a
// stable and deterministic report.
func (b *Bag) Files() []string {
	seen := make(map[string]bool, len(b.items))
	files := make([]string, 0, len(b.items))
	for _, d := range b.items {
		if seen[d.File] {
			continue
		}
		seen[d.File] = true
		files = append(files, d.File)
	}
	sort.Strings(files)
	return files
}
