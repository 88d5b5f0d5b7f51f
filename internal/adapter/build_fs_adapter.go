// Package adapter contains filesystem and output adapters for the
// mason CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mason-dev/mason/internal/model"
)

// workspaceMarkers are the files that identify a workspace root, in
// lookup order.
var workspaceMarkers = []string{"WORKSPACE", "WORKSPACE.bazel", "MODULE.bazel"}

// BuildFSAdapter abstracts the filesystem operations the engine and the
// scaffolder rely on. It hides direct `os` access so the workflow logic
// can be tested without touching the disk.
type BuildFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check
	// existence or distinguish files from directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Remove deletes a single file.
	Remove(path m.Path) error

	// CopyFile duplicates src to dst, preserving the source mode.
	CopyFile(src, dst m.Path) error

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error

	// FindWorkspaceRoot searches for a workspace marker file walking up
	// the directory tree from startPath.
	FindWorkspaceRoot(startPath m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalBuildFSAdapter is the concrete implementation backed by the os
// package.
type LocalBuildFSAdapter struct{}

// NewLocalBuildFSAdapter constructs a LocalBuildFSAdapter ready to be
// wired into the workflow.
func NewLocalBuildFSAdapter() *LocalBuildFSAdapter {
	return &LocalBuildFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalBuildFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalBuildFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalBuildFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Remove deletes the file at path.
func (a *LocalBuildFSAdapter) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// CopyFile duplicates src to dst, preserving the source file mode.
func (a *LocalBuildFSAdapter) CopyFile(src, dst m.Path) error {
	info, err := os.Stat(string(src))
	if err != nil {
		return err
	}

	// #nosec G304 - src is a caller-controlled project file path
	sourceFile, err := os.Open(string(src))
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	// #nosec G304 - dst is derived from the target path
	destFile, err := os.Create(string(dst))
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(string(dst), info.Mode())
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalBuildFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}

// FindWorkspaceRoot walks up from startPath until it finds a directory
// containing a workspace marker file.
func (a *LocalBuildFSAdapter) FindWorkspaceRoot(startPath m.Path) (m.Path, error) {
	dir := string(startPath)

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		for _, marker := range workspaceMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return m.Path(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no workspace marker found in any parent directory of %s", startPath)
		}

		dir = parent
	}
}

// JoinPath joins path elements into a single path.
func (a *LocalBuildFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
