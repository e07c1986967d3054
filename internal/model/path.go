// Package model defines the data structures shared by discovery and bundling.
package model

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// DepsDir is the reserved subtree the bundling engine writes shared
// dependency chunks into.
const DepsDir = "_deps"

// Path represents a host file system path.
type Path string

// SourcePath is a slash-separated path relative to the scanned root.
// It never contains ".." segments.
type SourcePath string

// NewSourcePath normalizes a host relative path into a SourcePath.
func NewSourcePath(rel string) (SourcePath, error) {
	p := filepath.ToSlash(rel)
	if p == "" || p == "." {
		return "", fmt.Errorf("empty source path")
	}

	if path.IsAbs(p) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("source path %q must be relative", rel)
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return "", fmt.Errorf("source path %q escapes the root", rel)
		}
	}

	return SourcePath(path.Clean(p)), nil
}

// Dir returns the directory component, or "" for files at the root.
func (p SourcePath) Dir() string {
	dir := path.Dir(string(p))
	if dir == "." {
		return ""
	}

	return dir
}

// Base returns the last element of the path.
func (p SourcePath) Base() string {
	return path.Base(string(p))
}

// Ext returns the extension of the basename without the leading dot.
func (p SourcePath) Ext() string {
	return strings.TrimPrefix(path.Ext(p.Base()), ".")
}

// Stem returns the basename with its final extension removed.
func (p SourcePath) Stem() string {
	base := p.Base()

	return strings.TrimSuffix(base, path.Ext(base))
}

// IsRoot reports whether the file sits directly in the scanned root.
func (p SourcePath) IsRoot() bool {
	return p.Dir() == ""
}

// IsDeps reports whether the path lives in the shared dependency subtree.
func (p SourcePath) IsDeps() bool {
	first, _, _ := strings.Cut(string(p), "/")

	return first == DepsDir
}

// HostPath joins the source path onto a host root directory.
func (p SourcePath) HostPath(root Path) Path {
	return Path(filepath.Join(string(root), filepath.FromSlash(string(p))))
}
