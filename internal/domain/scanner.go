// Package domain contains the BUILD-file wiring engine: delimiter
// scanning, rule location, list mutation and the surrounding workflow.
package domain

import (
	m "github.com/mason-dev/mason/internal/model"
)

// ScanBalanced walks the lines character by character starting at
// startLine, counting depth for the given delimiter kind only. It
// returns the inclusive line range from startLine to the line where
// depth first returns to zero after having been incremented at least
// once.
//
// The scan has no quote or comment awareness; a delimiter inside a
// string literal counts toward the depth. Acceptable for the regularly
// formatted, machine-written declaration files this engine targets.
//
// Reaching end of file with nonzero depth is a soft failure: the second
// return value is false and callers degrade to the patch fallback.
func ScanBalanced(lines []string, startLine int, kind m.DelimiterKind) (m.DelimiterRange, bool) {
	if startLine < 0 || startLine >= len(lines) {
		return m.DelimiterRange{}, false
	}

	opening, closing := kind.Open(), kind.Close()

	depth := 0
	opened := false

	for i := startLine; i < len(lines); i++ {
		for _, r := range lines[i] {
			switch r {
			case opening:
				depth++
				opened = true
			case closing:
				depth--

				if opened && depth == 0 {
					return m.DelimiterRange{StartLine: startLine, EndLine: i}, true
				}
			}
		}
	}

	return m.DelimiterRange{}, false
}
