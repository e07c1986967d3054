package domain

import (
	"path"
	"strings"
)

// IgnorePolicy lists what discovery skips besides the always-excluded
// names: those beginning with "_" or "." and editor lock files
// beginning with "#".
type IgnorePolicy struct {
	// Dirs are directory names skipped wherever they appear.
	Dirs []string `mapstructure:"dirs" yaml:"dirs"`
	// Files are path.Match patterns tested against file basenames.
	Files []string `mapstructure:"files" yaml:"files"`
}

// DefaultIgnorePolicy returns the conventional dependency, generated
// output and test fixture exclusions.
func DefaultIgnorePolicy() IgnorePolicy {
	return IgnorePolicy{
		Dirs: []string{
			"node_modules",
			"vendor",
			"dist",
			"build",
			"fixtures",
			"__fixtures__",
			"__tests__",
		},
		Files: []string{
			"*.d.ts",
			"*.test.*",
			"*.spec.*",
		},
	}
}

// Merge returns a policy holding the entries of both policies.
func (p IgnorePolicy) Merge(other IgnorePolicy) IgnorePolicy {
	return IgnorePolicy{
		Dirs:  appendUnique(append([]string(nil), p.Dirs...), other.Dirs...),
		Files: appendUnique(append([]string(nil), p.Files...), other.Files...),
	}
}

// SkipDir reports whether a directory named name is excluded.
func (p IgnorePolicy) SkipDir(name string) bool {
	if alwaysIgnored(name) {
		return true
	}

	for _, dir := range p.Dirs {
		if dir == name {
			return true
		}
	}

	return false
}

// SkipFile reports whether a file named name is excluded.
func (p IgnorePolicy) SkipFile(name string) bool {
	if alwaysIgnored(name) {
		return true
	}

	for _, pattern := range p.Files {
		if matched, err := path.Match(pattern, name); err == nil && matched {
			return true
		}
	}

	return false
}

// SkipPath reports whether any element of a slash-separated relative path
// is excluded, treating the last element as a file unless isDir is set.
func (p IgnorePolicy) SkipPath(rel string, isDir bool) bool {
	parts := strings.Split(rel, "/")

	for i, part := range parts {
		if part == "" || part == "." {
			continue
		}

		if i == len(parts)-1 && !isDir {
			return p.SkipFile(part)
		}

		if p.SkipDir(part) {
			return true
		}
	}

	return false
}

// alwaysIgnored covers private and generated names ("_"), hidden files
// (".") and editor lock or autosave files ("#").
func alwaysIgnored(name string) bool {
	return strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "#")
}

func appendUnique(dst []string, items ...string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, item := range dst {
		seen[item] = struct{}{}
	}

	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}

		seen[item] = struct{}{}
		dst = append(dst, item)
	}

	return dst
}
