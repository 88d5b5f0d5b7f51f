// Package scaffold creates new module directories and their
// boilerplate files inside a workspace.
package scaffold

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mason-dev/mason/internal/adapter"
	m "github.com/mason-dev/mason/internal/model"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Module is a planned (not yet created) scaffold: the target directory,
// the label other rules refer to it by, and the files to emit.
type Module struct {
	Dir   m.Path
	Label string
	Files []m.Path

	contents map[m.Path][]byte
}

// Scaffolder plans and creates module boilerplate through the fs
// adapter.
type Scaffolder struct {
	fs adapter.BuildFSAdapter
}

// NewScaffolder constructs a Scaffolder.
func NewScaffolder(fs adapter.BuildFSAdapter) *Scaffolder {
	return &Scaffolder{fs: fs}
}

// Plan computes the module that would be created for the given
// workspace root and workspace-relative directory, without touching the
// disk. When name is empty the directory base name is used.
func (s *Scaffolder) Plan(root m.Path, rel, name string, copyright string) (Module, error) {
	rel = strings.Trim(filepath.ToSlash(filepath.Clean(rel)), "/")
	if rel == "" || rel == "." || strings.HasPrefix(rel, "..") {
		return Module{}, fmt.Errorf("scaffold: module directory %q must be inside the workspace", rel)
	}

	if name == "" {
		name = path.Base(rel)
	}

	dir := s.fs.JoinPath(string(root), filepath.FromSlash(rel))

	guard := strings.ToUpper(strings.NewReplacer("/", "_", "-", "_", ".", "_").Replace(rel+"/"+name)) + "_H_"

	subs := map[string]string{
		"name":  name,
		"path":  rel,
		"guard": guard,
	}

	var banner string
	if copyright != "" {
		banner = "// " + copyright + "\n"
	}

	contents := map[m.Path][]byte{
		s.fs.JoinPath(string(dir), name+".h"):  []byte(banner + render(headerTemplate, subs)),
		s.fs.JoinPath(string(dir), name+".cc"): []byte(banner + render(sourceTemplate, subs)),
		s.fs.JoinPath(string(dir), "BUILD"):    []byte(render(buildTemplate, subs)),
	}

	files := []m.Path{
		s.fs.JoinPath(string(dir), name+".h"),
		s.fs.JoinPath(string(dir), name+".cc"),
		s.fs.JoinPath(string(dir), "BUILD"),
	}

	return Module{
		Dir:      dir,
		Label:    "//" + rel + ":" + name,
		Files:    files,
		contents: contents,
	}, nil
}

// Create materializes a planned module. It refuses to touch a directory
// that already exists, so re-running `mason new` never clobbers user
// edits.
func (s *Scaffolder) Create(mod Module) error {
	if _, err := s.fs.FileInfo(mod.Dir); err == nil {
		return fmt.Errorf("scaffold: %s already exists", mod.Dir)
	}

	if err := s.fs.MkdirAll(mod.Dir, os.FileMode(dirPerm)); err != nil {
		return fmt.Errorf("scaffold: create %s: %w", mod.Dir, err)
	}

	var g errgroup.Group

	for file, content := range mod.contents {
		g.Go(func() error {
			if err := s.fs.WriteFile(file, content, os.FileMode(filePerm)); err != nil {
				return fmt.Errorf("scaffold: write %s: %w", file, err)
			}

			return nil
		})
	}

	return g.Wait()
}
