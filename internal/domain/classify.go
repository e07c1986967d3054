// Package domain contains entry-point discovery, environment
// classification and bundle orchestration.
package domain

import (
	m "github.com/mouse-blink/fnpack/internal/model"
)

var entryPointExtensions = map[string]struct{}{
	"js":  {},
	"jsx": {},
	"ts":  {},
	"tsx": {},
	"mjs": {},
	"cjs": {},
}

// reservedStems are root-level file stems that always run in the isolate.
var reservedStems = map[string]m.Kind{
	"http":   m.KindHTTP,
	"crons":  m.KindCron,
	"schema": m.KindSchema,
}

// IsEntryPointExtension reports whether ext (without the dot) is a
// recognized entry-point extension.
func IsEntryPointExtension(ext string) bool {
	_, ok := entryPointExtensions[ext]

	return ok
}

// RequiresIsolate reports whether the path's name alone forces the isolate
// environment: a root-level file with a recognized extension whose stem is
// exactly one of the reserved stems.
func RequiresIsolate(path m.SourcePath) bool {
	if !path.IsRoot() || !IsEntryPointExtension(path.Ext()) {
		return false
	}

	_, ok := reservedStems[path.Stem()]

	return ok
}

// KindFor returns the entry-point kind a path's name reserves. Only
// root-level files can hold a reserved kind.
func KindFor(path m.SourcePath) m.Kind {
	if !RequiresIsolate(path) {
		return m.KindFunction
	}

	return reservedStems[path.Stem()]
}
