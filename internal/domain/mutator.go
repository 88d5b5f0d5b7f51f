package domain

import (
	"strings"

	m "github.com/mason-dev/mason/internal/model"
)

// indentStep is the extra indentation applied to inserted list entries,
// relative to the line holding the closing delimiter.
const indentStep = "    "

// EnsureEntries guarantees that every candidate entry appears in the
// rule block's list field. When the block has a recognizable field the
// missing entries are inserted immediately before the list's closing
// line; when it has none, a complete field is synthesized instead.
//
// The input lines are never modified; a mutated result carries a fresh
// line slice.
func EnsureEntries(lines []string, block m.DelimiterRange, field string, entries []m.Entry) m.MutationResult {
	list, ok := locateListField(lines, block, field)
	if !ok {
		return Synthesize(lines, block, field, entries)
	}

	joined := strings.Join(lines[list.StartLine:list.EndLine+1], "\n")

	var missing []m.Entry

	var present []string

	for _, e := range entries {
		if strings.Contains(joined, e.Quoted()) {
			present = append(present, string(e))
		} else {
			missing = append(missing, e)
		}
	}

	if len(missing) == 0 {
		return m.MutationResult{Outcome: m.OutcomeUnchanged, Present: present}
	}

	// A one-line list has no separate closing line to insert above;
	// splicing would land the entries outside the list. Degrade to the
	// patch fallback rather than write an ambiguous edit.
	if list.StartLine == list.EndLine {
		return m.MutationResult{Outcome: m.OutcomeUnlocatable}
	}

	indent := leadingWhitespace(lines[list.EndLine]) + indentStep

	insert := make([]string, 0, len(missing))
	inserted := make([]string, 0, len(missing))

	for _, e := range missing {
		insert = append(insert, indent+e.Quoted()+",")
		inserted = append(inserted, string(e))
	}

	return m.MutationResult{
		Outcome:  m.OutcomeMutated,
		Lines:    spliceLines(lines, list.EndLine, insert),
		Inserted: inserted,
		Present:  present,
	}
}

// Synthesize handles blocks without a recognizable list field. The
// idempotence check here is deliberately looser than the field-scoped
// one above: entries are matched against the whole block text, so a
// label mentioned anywhere in the block counts as present.
func Synthesize(lines []string, block m.DelimiterRange, field string, entries []m.Entry) m.MutationResult {
	joined := strings.Join(lines[block.StartLine:block.EndLine+1], "\n")

	allPresent := true

	for _, e := range entries {
		if !strings.Contains(joined, e.Quoted()) {
			allPresent = false
			break
		}
	}

	if allPresent {
		return m.MutationResult{Outcome: m.OutcomeUnchanged, Present: labels(entries)}
	}

	// Same guard as the list path: a one-line block offers no closing
	// line to splice the field above.
	if block.StartLine == block.EndLine {
		return m.MutationResult{Outcome: m.OutcomeUnlocatable}
	}

	out := make([]string, len(lines))
	copy(out, lines)

	// The synthesized field follows an existing attribute, so the line
	// before the block's closing delimiter must end with a comma.
	if prev := block.EndLine - 1; prev > block.StartLine {
		trimmed := strings.TrimSpace(out[prev])
		if trimmed != "" && !strings.HasSuffix(trimmed, ",") {
			out[prev] = strings.TrimRight(out[prev], " \t") + ","
		}
	}

	base := leadingWhitespace(lines[block.EndLine])

	insert := make([]string, 0, len(entries)+2)
	insert = append(insert, base+indentStep+field+" = [")

	for _, e := range entries {
		insert = append(insert, base+indentStep+indentStep+e.Quoted()+",")
	}

	insert = append(insert, base+indentStep+"],")

	return m.MutationResult{
		Outcome:  m.OutcomeMutated,
		Lines:    spliceLines(out, block.EndLine, insert),
		Inserted: labels(entries),
	}
}

// locateListField finds the bracketed value of the named field inside
// the block. The field must appear as its own token at the start of the
// trimmed line, followed by an assignment, so substrings like
// `name = "deps_tool"` never anchor the bracket scan; mirrors the
// rule-prefix check in LocateRuleBlock.
func locateListField(lines []string, block m.DelimiterRange, field string) (m.DelimiterRange, bool) {
	for i := block.StartLine; i <= block.EndLine && i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, field) {
			continue
		}

		rest := strings.TrimLeft(strings.TrimPrefix(trimmed, field), " \t")
		if !strings.HasPrefix(rest, "=") {
			continue
		}

		return ScanBalanced(lines, i, m.DelimiterBracket)
	}

	return m.DelimiterRange{}, false
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

func spliceLines(lines []string, at int, insert []string) []string {
	out := make([]string, 0, len(lines)+len(insert))
	out = append(out, lines[:at]...)
	out = append(out, insert...)
	out = append(out, lines[at:]...)

	return out
}

func labels(entries []m.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, string(e))
	}

	return out
}
