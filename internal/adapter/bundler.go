package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	m "github.com/mouse-blink/fnpack/internal/model"
)

var (
	// ErrResolution is wrapped by engine errors caused by an import that
	// could not be resolved. It points at an authoring defect and is never
	// worth retrying.
	ErrResolution = errors.New("unresolved import")
	// ErrBuild is wrapped by every other engine failure.
	ErrBuild = errors.New("bundling failed")
)

// BundleOptions configures one engine invocation.
type BundleOptions struct {
	Platform   m.Platform
	SourceMaps bool
}

// EngineOutput is a file produced by the bundling engine. Path is
// slash-separated and relative to the output root; source maps are
// emitted as separate "<path>.map" outputs.
type EngineOutput struct {
	Path     string
	Contents []byte
}

// EngineMessage is a single error reported by the engine.
type EngineMessage struct {
	File   string
	Line   int
	Column int
	Text   string
}

func (msg EngineMessage) String() string {
	if msg.File == "" {
		return msg.Text
	}

	return fmt.Sprintf("%s:%d:%d: %s", msg.File, msg.Line, msg.Column, msg.Text)
}

// EngineError carries the messages of a failed engine invocation.
type EngineError struct {
	Messages   []EngineMessage
	resolution bool
}

// NewEngineError builds an EngineError, marking it as a resolution failure
// when any message reports an unresolvable import.
func NewEngineError(messages []EngineMessage) *EngineError {
	e := &EngineError{Messages: messages}

	for _, msg := range messages {
		if strings.HasPrefix(msg.Text, "Could not resolve") {
			e.resolution = true

			break
		}
	}

	return e
}

func (e *EngineError) Error() string {
	parts := make([]string, 0, len(e.Messages))
	for _, msg := range e.Messages {
		parts = append(parts, msg.String())
	}

	return fmt.Sprintf("%v: %s", e.Unwrap(), strings.Join(parts, "; "))
}

// Unwrap returns ErrResolution or ErrBuild.
func (e *EngineError) Unwrap() error {
	if e.resolution {
		return ErrResolution
	}

	return ErrBuild
}

// Bundler is the dependency-closure bundling engine. One call bundles the
// full entry-point set so shared dependencies land once in the _deps
// subtree.
type Bundler interface {
	ResolveAndBundle(ctx context.Context, root m.Path, entryPoints []m.SourcePath, opts BundleOptions) ([]EngineOutput, error)

	// SupportsConcurrentBuilds reports whether two ResolveAndBundle calls
	// may be in flight at the same time.
	SupportsConcurrentBuilds() bool
}
