package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mason-dev/mason/internal/model"
)

// nopUI satisfies controller.UI for sink tests; sinks own the side
// effects, the UI only narrates them.
type nopUI struct{}

func (nopUI) DisplayDiff(m.Path, *m.Diff) {}

func (nopUI) DisplayNoChanges(m.Path, []string) {}

func (nopUI) DisplayApplied(m.Path, m.Path, []string, []string) {}

func (nopUI) DisplayPatchSuggestion(m.Path, string) {}

func (nopUI) DisplayPatchWritten(m.Path, m.Path) {}

func (nopUI) DisplayModulePlan(m.Path, []m.Path) {}

func (nopUI) DisplayModuleCreated(string, []m.Path) {}

type failingBackup struct{}

func (failingBackup) Backup(m.Path) (m.Path, error) {
	return "", errors.New("disk full")
}

func targetFile(t *testing.T, content string) m.Path {
	t.Helper()

	path := filepath.Join(t.TempDir(), "BUILD")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return m.Path(path)
}

func TestApplySink_BackupPrecedesWrite(t *testing.T) {
	t.Parallel()

	target := targetFile(t, "old\n")
	fs := NewLocalBuildFSAdapter()
	sink := NewApplySink(fs, NewTimestampBackupWriter(fs), nopUI{})

	err := sink.Mutated(target, m.MutationResult{
		Outcome: m.OutcomeMutated,
		Lines:   []string{"new"},
	}, nil)
	require.NoError(t, err)

	content, err := os.ReadFile(string(target))
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(content))

	backups, err := filepath.Glob(string(target) + ".mason.bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	backupContent, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(backupContent), "backup holds the pre-mutation content")
}

func TestApplySink_BackupFailureAbortsWrite(t *testing.T) {
	t.Parallel()

	target := targetFile(t, "old\n")
	sink := NewApplySink(NewLocalBuildFSAdapter(), failingBackup{}, nopUI{})

	err := sink.Mutated(target, m.MutationResult{
		Outcome: m.OutcomeMutated,
		Lines:   []string{"new"},
	}, nil)
	require.Error(t, err)

	content, err := os.ReadFile(string(target))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(content), "no write may happen without a backup")
}

func TestApplySink_UnlocatableWritesPatchOnly(t *testing.T) {
	t.Parallel()

	target := targetFile(t, "py_library()\n")
	fs := NewLocalBuildFSAdapter()
	sink := NewApplySink(fs, NewTimestampBackupWriter(fs), nopUI{})

	require.NoError(t, sink.Unlocatable(target, "deps = [\n]\n"))

	patch, err := os.ReadFile(string(target) + ".mason.patch")
	require.NoError(t, err)
	assert.Equal(t, "deps = [\n]\n", string(patch))

	content, err := os.ReadFile(string(target))
	require.NoError(t, err)
	assert.Equal(t, "py_library()\n", string(content))

	backups, err := filepath.Glob(string(target) + ".mason.bak.*")
	require.NoError(t, err)
	assert.Empty(t, backups, "no backup for an untouched target")
}

func TestPreviewSink_HasZeroSideEffects(t *testing.T) {
	t.Parallel()

	target := targetFile(t, "old\n")
	sink := NewPreviewSink(nopUI{})

	require.NoError(t, sink.Mutated(target, m.MutationResult{
		Outcome: m.OutcomeMutated,
		Lines:   []string{"new"},
	}, &m.Diff{}))
	require.NoError(t, sink.Unlocatable(target, "snippet"))
	require.NoError(t, sink.Unchanged(target, nil))

	content, err := os.ReadFile(string(target))
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(content))

	siblings, err := filepath.Glob(string(target) + ".mason.*")
	require.NoError(t, err)
	assert.Empty(t, siblings, "preview mode creates no artifacts")
}
