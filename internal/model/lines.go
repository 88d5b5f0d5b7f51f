package model

import "strings"

// SplitLines converts raw file content into the line sequence the
// engine scans. The content is read once at the start of an invocation
// and the resulting slice is treated as immutable.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}

// JoinLines renders a line sequence back to file content with a
// trailing newline.
func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}
