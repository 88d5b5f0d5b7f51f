package adapter

import (
	"fmt"
	"os"

	"github.com/mason-dev/mason/internal/controller"
	m "github.com/mason-dev/mason/internal/model"
)

const filePerm = 0o644

// MutationSink receives the outcome of one engine invocation. The sink
// is selected once at the start of an invocation — persist for apply
// mode, render for preview — so no mode flag threads through the
// engine itself.
type MutationSink interface {
	// Mutated handles a computed mutation. Apply sinks persist it;
	// preview sinks render the diff.
	Mutated(target m.Path, result m.MutationResult, diff *m.Diff) error

	// Unchanged handles an idempotent no-op.
	Unchanged(target m.Path, present []string) error

	// Unlocatable handles the degraded path: no rule block was found
	// and snippet describes the intended change.
	Unlocatable(target m.Path, snippet string) error
}

// ApplySink persists mutations: backup first, then a single write of
// the full new content. Unlocatable targets get a patch artifact at a
// sibling path; the target itself is never touched in that case.
type ApplySink struct {
	fs     BuildFSAdapter
	backup BackupWriter
	ui     controller.UI
}

// NewApplySink constructs an ApplySink.
func NewApplySink(fs BuildFSAdapter, backup BackupWriter, ui controller.UI) *ApplySink {
	return &ApplySink{fs: fs, backup: backup, ui: ui}
}

// Mutated backs the target up and writes the mutated content. A failed
// backup aborts before anything is written; a failed write surfaces as
// fatal with the backup left on disk as the recovery path.
func (s *ApplySink) Mutated(target m.Path, result m.MutationResult, _ *m.Diff) error {
	backupPath, err := s.backup.Backup(target)
	if err != nil {
		return err
	}

	if err := s.fs.WriteFile(target, m.JoinLines(result.Lines), os.FileMode(filePerm)); err != nil {
		return fmt.Errorf("write %s (backup preserved at %s): %w", target, backupPath, err)
	}

	s.ui.DisplayApplied(target, backupPath, result.Inserted, result.Present)

	return nil
}

// Unchanged reports the no-op.
func (s *ApplySink) Unchanged(target m.Path, present []string) error {
	s.ui.DisplayNoChanges(target, present)
	return nil
}

// Unlocatable writes the suggested snippet to "<target>.mason.patch".
func (s *ApplySink) Unlocatable(target m.Path, snippet string) error {
	patch := PatchPath(target)

	if err := s.fs.WriteFile(patch, []byte(snippet), os.FileMode(filePerm)); err != nil {
		return fmt.Errorf("write patch %s: %w", patch, err)
	}

	s.ui.DisplayPatchWritten(target, patch)

	return nil
}

// PreviewSink renders outcomes without any side effects on disk.
type PreviewSink struct {
	ui controller.UI
}

// NewPreviewSink constructs a PreviewSink.
func NewPreviewSink(ui controller.UI) *PreviewSink {
	return &PreviewSink{ui: ui}
}

// Mutated renders the contextual diff.
func (s *PreviewSink) Mutated(target m.Path, _ m.MutationResult, diff *m.Diff) error {
	s.ui.DisplayDiff(target, diff)
	return nil
}

// Unchanged reports the no-op.
func (s *PreviewSink) Unchanged(target m.Path, present []string) error {
	s.ui.DisplayNoChanges(target, present)
	return nil
}

// Unlocatable renders the snippet to the console instead of writing it.
func (s *PreviewSink) Unlocatable(target m.Path, snippet string) error {
	s.ui.DisplayPatchSuggestion(target, snippet)
	return nil
}
