package adapter

import (
	"fmt"
	"strings"
	"time"

	m "github.com/mason-dev/mason/internal/model"
)

// toolMarker qualifies every artifact mason leaves next to a target
// file, so backups and patches are easy to spot and clean up.
const toolMarker = "mason"

// BackupWriter copies the target aside before a mutation is persisted.
// A failed backup must abort the whole invocation; the engine never
// writes mutated content without one.
type BackupWriter interface {
	Backup(target m.Path) (m.Path, error)
}

// TimestampBackupWriter writes backups to a timestamp-qualified sibling
// path of the target.
type TimestampBackupWriter struct {
	fs  BuildFSAdapter
	now func() time.Time
}

// NewTimestampBackupWriter constructs a TimestampBackupWriter using the
// wall clock.
func NewTimestampBackupWriter(fs BuildFSAdapter) *TimestampBackupWriter {
	return &TimestampBackupWriter{fs: fs, now: time.Now}
}

// Backup duplicates the target to "<target>.mason.bak.<stamp>" and
// returns the backup path. A pre-existing artifact at the same stamp is
// removed first so the copy is never appended to or half-overwritten.
func (w *TimestampBackupWriter) Backup(target m.Path) (m.Path, error) {
	stamp := strings.ReplaceAll(w.now().UTC().Format(time.RFC3339), ":", "-")
	dst := m.Path(fmt.Sprintf("%s.%s.bak.%s", target, toolMarker, stamp))

	if _, err := w.fs.FileInfo(dst); err == nil {
		if err := w.fs.Remove(dst); err != nil {
			return "", fmt.Errorf("remove stale backup %s: %w", dst, err)
		}
	}

	if err := w.fs.CopyFile(target, dst); err != nil {
		return "", fmt.Errorf("back up %s: %w", target, err)
	}

	return dst, nil
}

// PatchPath returns the sibling path where a patch artifact for the
// target is written.
func PatchPath(target m.Path) m.Path {
	return m.Path(fmt.Sprintf("%s.%s.patch", target, toolMarker))
}
