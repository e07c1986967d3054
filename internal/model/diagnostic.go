package model

import "fmt"

// Severity grades a diagnostic.
type Severity string

const (
	// SeverityWarning marks an authoring problem that does not stop a build.
	SeverityWarning Severity = "warning"
	// SeverityError marks a problem that skipped part of the input.
	SeverityError Severity = "error"
)

// Diagnostic is a message attached to a source path during discovery.
type Diagnostic struct {
	Severity Severity   `json:"severity" yaml:"severity"`
	Path     SourcePath `json:"path" yaml:"path"`
	Message  string     `json:"message" yaml:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Path, d.Message)
}

// Discovery is the result of walking a source tree.
type Discovery struct {
	EntryPoints []EntryPoint
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func HasErrors(diagnostics []Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}
