// Package adapter contains the infrastructure adapters fnpack drives: the
// filesystem, the bundling engine, the source package store and the
// file watcher.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/fnpack/internal/model"
)

// SkipDir is returned from a FilepathWalkFunc to skip the current directory.
var SkipDir = filepath.SkipDir

// SourceFSAdapter abstracts the read-only filesystem operations discovery
// relies on so the domain layer can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root in lexical order, calling fn for every file and
	// directory including root itself.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// RelPath returns target relative to base as a SourcePath.
	RelPath(base, target m.Path) (m.SourcePath, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter implements SourceFSAdapter on the host filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over everything under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - path comes from walking the user's own source tree
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// RelPath returns the slash-normalized path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.SourcePath, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	sp, err := m.NewSourcePath(rel)
	if err != nil {
		return "", fmt.Errorf("relative path of %s: %w", target, err)
	}

	return sp, nil
}

// AbsRoot resolves root to an absolute, cleaned directory path. It fails
// when root does not exist or is not a directory.
func AbsRoot(fs SourceFSAdapter, root m.Path) (m.Path, error) {
	if root == "" {
		root = "."
	}

	abs, err := filepath.Abs(string(root))
	if err != nil {
		return "", err
	}

	info, err := fs.FileInfo(m.Path(abs))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s does not exist", root)
		}

		return "", err
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", root)
	}

	return m.Path(abs), nil
}
