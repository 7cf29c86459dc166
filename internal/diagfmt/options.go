package diagfmt

// PrettyOpts configures the human-readable report.
type PrettyOpts struct {
	Color bool
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	// IncludeDiagnostics lists every record per file instead of just
	// the counts.
	IncludeDiagnostics bool
}
