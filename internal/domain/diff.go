package domain

import (
	m "github.com/mason-dev/mason/internal/model"
)

// diffContext is the number of unchanged lines shown on each side of
// the differing span.
const diffContext = 3

// ComputeDiff locates the differing span between two line sequences and
// returns it with bounded context. It returns nil when the sequences
// are identical. The scan narrows from both ends, so an insertion in
// the middle of a file produces a minimal span rather than a whole-file
// diff.
func ComputeDiff(original, mutated []string) *m.Diff {
	start := 0
	for start < len(original) && start < len(mutated) && original[start] == mutated[start] {
		start++
	}

	if start == len(original) && start == len(mutated) {
		return nil
	}

	endA := len(original) - 1
	endB := len(mutated) - 1

	for endA >= start && endB >= start && original[endA] == mutated[endB] {
		endA--
		endB--
	}

	before := start - diffContext
	if before < 0 {
		before = 0
	}

	after := endA + 1 + diffContext
	if after > len(original) {
		after = len(original)
	}

	return &m.Diff{
		Start:   start,
		Before:  original[before:start],
		Removed: original[start : endA+1],
		Added:   mutated[start : endB+1],
		After:   original[endA+1 : after],
	}
}
