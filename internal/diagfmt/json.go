package diagfmt

import (
	"encoding/json"
	"io"

	"tsfix/internal/diag"
)

type jsonDiagnostic struct {
	Line       uint32 `json:"line"`
	Col        uint32 `json:"col"`
	Import     string `json:"import,omitempty"`
	RemoveLine bool   `json:"remove_line,omitempty"`
}

type jsonFile struct {
	Path        string           `json:"path"`
	Count       int              `json:"count"`
	Diagnostics []jsonDiagnostic `json:"diagnostics,omitempty"`
}

type jsonReport struct {
	Total int        `json:"total"`
	Files []jsonFile `json:"files"`
}

// JSON writes the report as a single indented object.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	byFile := bag.ByFile()
	report := jsonReport{
		Total: bag.Len(),
		Files: make([]jsonFile, 0, len(byFile)),
	}
	for _, path := range bag.Files() {
		records := byFile[path]
		entry := jsonFile{Path: path, Count: len(records)}
		if opts.IncludeDiagnostics {
			for _, d := range records {
				jd := jsonDiagnostic{Line: d.Line, Col: d.Col}
				if d.RemovesLine() {
					jd.RemoveLine = true
				} else {
					jd.Import = d.Import
				}
				entry.Diagnostics = append(entry.Diagnostics, jd)
			}
		}
		report.Files = append(report.Files, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
