package diag

import (
	"regexp"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// The compiler emits one diagnostic per line:
//
//	src/app/page.tsx(10,3): error TS6133: 'useState' is declared but its value is never read.
//	src/app/page.tsx(5,1): error TS6192: All imports in import declaration are unused.
//
// TS6133 names a single unused binding, TS6192 covers the whole
// declaration. Everything else in the stream is ignored.
var (
	namedRe    = regexp.MustCompile(`^([^(]+)\((\d+),(\d+)\): error TS6\d+: '([^']+)'`)
	locationRe = regexp.MustCompile(`^([^(]+)\((\d+),(\d+)\):`)
)

const allUnusedPhrase = "All imports in import declaration are unused"

// Parse scans raw compiler output and extracts unused-import
// diagnostics. Lines that match neither pattern, or that resemble a
// diagnostic but fail full extraction, are skipped without error. The
// result preserves input order and is not deduplicated.
func Parse(output string) []Diagnostic {
	var out []Diagnostic
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "error TS6133") && !strings.Contains(line, "error TS6192") {
			continue
		}
		if m := namedRe.FindStringSubmatch(line); m != nil {
			lineNum, col, ok := parsePosition(m[2], m[3])
			if !ok {
				continue
			}
			out = append(out, Diagnostic{
				File:   m[1],
				Line:   lineNum,
				Col:    col,
				Import: m[4],
			})
			continue
		}
		if !strings.Contains(line, allUnusedPhrase) {
			continue
		}
		m := locationRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		lineNum, col, ok := parsePosition(m[2], m[3])
		if !ok {
			continue
		}
		out = append(out, Diagnostic{
			File:   m[1],
			Line:   lineNum,
			Col:    col,
			Import: ImportAll,
		})
	}
	return out
}

func parsePosition(lineStr, colStr string) (line, col uint32, ok bool) {
	l, err := strconv.Atoi(lineStr)
	if err != nil || l < 1 {
		return 0, 0, false
	}
	c, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, false
	}
	line, err = safecast.Conv[uint32](l)
	if err != nil {
		return 0, 0, false
	}
	col, err = safecast.Conv[uint32](c)
	if err != nil {
		return 0, 0, false
	}
	return line, col, true
}
