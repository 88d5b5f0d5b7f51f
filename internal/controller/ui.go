// Package controller provides output adapters for displaying wiring
// results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mason-dev/mason/internal/model"
)

// UI defines the interface for reporting engine and scaffolder results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	// DisplayDiff renders a contextual diff for a preview invocation.
	DisplayDiff(target m.Path, diff *m.Diff)

	// DisplayNoChanges reports an idempotent no-op.
	DisplayNoChanges(target m.Path, present []string)

	// DisplayApplied reports a persisted mutation and its backup.
	DisplayApplied(target m.Path, backup m.Path, inserted, present []string)

	// DisplayPatchSuggestion renders a suggested snippet to the console.
	DisplayPatchSuggestion(target m.Path, snippet string)

	// DisplayPatchWritten reports a patch artifact written next to an
	// unlocatable target.
	DisplayPatchWritten(target, patch m.Path)

	// DisplayModulePlan lists the files a scaffold invocation would
	// create, without creating them.
	DisplayModulePlan(dir m.Path, files []m.Path)

	// DisplayModuleCreated reports a scaffolded module and its label.
	DisplayModuleCreated(label string, files []m.Path)
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY
// is true it returns a TUI that pages large diffs through Bubble Tea;
// otherwise a SimpleUI printing plain text.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY). Returns false
// when output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
