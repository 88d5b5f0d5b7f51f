package domain

import (
	"strings"

	m "github.com/mason-dev/mason/internal/model"
)

// LocateRuleBlock finds the topmost invocation of the given rule kind.
// A candidate is any line whose whitespace-trimmed content starts with
// the rule token immediately followed by "(", anchored through
// ScanBalanced to obtain the full block. When several candidates close
// successfully, the one with the smallest start line wins; the primary
// target of a package is conventionally declared first in the file.
func LocateRuleBlock(lines []string, rule string) (m.DelimiterRange, bool) {
	prefix := rule + "("

	var (
		best  m.DelimiterRange
		found bool
	)

	for i, line := range lines {
		if !strings.HasPrefix(strings.TrimSpace(line), prefix) {
			continue
		}

		block, ok := ScanBalanced(lines, i, m.DelimiterParen)
		if !ok {
			continue
		}

		if !found || block.StartLine < best.StartLine {
			best = block
			found = true
		}
	}

	return best, found
}
