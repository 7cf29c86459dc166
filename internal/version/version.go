package version

import "github.com/fatih/color"

// Build metadata for the tsfix CLI, overridable at build time via
// -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var versionColor = color.New(color.FgCyan, color.Bold)

// Pretty returns Version with the CLI accent color applied when the
// output supports it.
func Pretty() string {
	return versionColor.Sprint(Version)
}
