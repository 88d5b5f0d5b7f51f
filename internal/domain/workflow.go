package domain

import (
	"fmt"

	"github.com/mason-dev/mason/internal/adapter"
	m "github.com/mason-dev/mason/internal/model"
)

// WireArgs describes one engine invocation: the target declaration
// file, the rule kind and list field to mutate, the labels to ensure
// present, and the sink that decides what happens to the outcome.
type WireArgs struct {
	Target m.Path
	Rule   string
	Field  string
	Labels []string
	Sink   adapter.MutationSink
}

// Workflow defines the interface for wiring operations.
type Workflow interface {
	Wire(args WireArgs) error
}

type workflow struct {
	fs adapter.BuildFSAdapter
}

// NewWorkflow creates a new Workflow instance with the provided fs
// adapter.
func NewWorkflow(fs adapter.BuildFSAdapter) Workflow {
	return &workflow{fs: fs}
}

// Wire performs one full read-scan-mutate-sink sequence. The file is
// read exactly once at the start; every transform produces a fresh line
// sequence, and the sink performs at most one write at the end.
// Location failures are not errors — they degrade to the sink's
// unlocatable path so the target file is never corrupted.
func (w *workflow) Wire(args WireArgs) error {
	content, err := w.fs.ReadFile(args.Target)
	if err != nil {
		return fmt.Errorf("read %s: %w", args.Target, err)
	}

	original := m.SplitLines(content)

	entries := make([]m.Entry, 0, len(args.Labels))
	for _, label := range args.Labels {
		entries = append(entries, m.Entry(label))
	}

	block, ok := LocateRuleBlock(original, args.Rule)
	if !ok {
		return args.Sink.Unlocatable(args.Target, SuggestedSnippet(args.Rule, args.Field, entries))
	}

	result := EnsureEntries(original, block, args.Field, entries)

	switch result.Outcome {
	case m.OutcomeMutated:
		return args.Sink.Mutated(args.Target, result, ComputeDiff(original, result.Lines))
	case m.OutcomeUnchanged:
		return args.Sink.Unchanged(args.Target, result.Present)
	default:
		// The mutator refuses ranges it cannot splice safely, such as
		// one-line lists and one-line blocks.
		return args.Sink.Unlocatable(args.Target, SuggestedSnippet(args.Rule, args.Field, entries))
	}
}
