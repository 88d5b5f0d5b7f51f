// Package model defines the data structures shared by the wiring engine.
package model

// Path represents a file system path.
type Path string

// DelimiterKind selects which delimiter pair a balanced scan tracks.
// A single scan pass follows exactly one kind; parentheses and brackets
// are never mixed in the same depth counter.
type DelimiterKind int

const (
	// DelimiterParen tracks "(" / ")" pairs (rule invocations).
	DelimiterParen DelimiterKind = iota
	// DelimiterBracket tracks "[" / "]" pairs (list field values).
	DelimiterBracket
)

// Open returns the opening character for the kind.
func (k DelimiterKind) Open() rune {
	if k == DelimiterBracket {
		return '['
	}

	return '('
}

// Close returns the closing character for the kind.
func (k DelimiterKind) Close() rune {
	if k == DelimiterBracket {
		return ']'
	}

	return ')'
}

// DelimiterRange is an inclusive line range covering one balanced
// delimiter region. StartLine holds the opening character, EndLine the
// matching close.
type DelimiterRange struct {
	StartLine int
	EndLine   int
}

// Entry is one dependency label to ensure present, in the "//path:name"
// convention, stored without surrounding quotes.
type Entry string

// Quoted returns the entry as it appears inside a list field.
func (e Entry) Quoted() string {
	return `"` + string(e) + `"`
}

// Outcome classifies the result of one engine invocation.
type Outcome int

const (
	// OutcomeUnchanged means every candidate entry was already present.
	OutcomeUnchanged Outcome = iota
	// OutcomeMutated means at least one entry was inserted.
	OutcomeMutated
	// OutcomeUnlocatable means no rule block could be found and the
	// engine degraded to a patch suggestion.
	OutcomeUnlocatable
)

// MutationResult carries the outcome of a list mutation together with
// the full replacement line sequence. The original lines are never
// modified in place; Lines is a fresh slice when Outcome is
// OutcomeMutated and nil otherwise.
type MutationResult struct {
	Outcome  Outcome
	Lines    []string
	Inserted []string // labels actually added, in candidate order
	Present  []string // labels that were already there
}

// Diff is a minimal contextual difference between two line sequences.
// Start is the zero-based index of the first differing line in the
// original sequence. Before and After carry up to three lines of
// unchanged context on each side.
type Diff struct {
	Start   int
	Before  []string
	Removed []string
	Added   []string
	After   []string
}
