// Package controller provides output adapters for displaying discovery and
// bundling results.
package controller

import (
	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// UI defines the interface for displaying entry points, bundles and
// diagnostics. Implementations can use different output methods (simple
// text, TUI, etc).
type UI interface {
	DisplayDiscovery(discovery m.Discovery) error
	DisplayBuild(result m.BuildResult, err error) error
	DisplayPackage(output m.Path, info adapter.PackageInfo)
	DisplayDiagnostics(diagnostics []m.Diagnostic)
	Close()
	Wait() // Wait for UI to finish (user closes it)
}
