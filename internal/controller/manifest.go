package controller

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/fnpack/internal/model"
)

// Manifest is the machine-readable form of a discovery pass.
type Manifest struct {
	Root        string         `yaml:"root"`
	EntryPoints []m.EntryPoint `yaml:"entryPoints"`
	Diagnostics []m.Diagnostic `yaml:"diagnostics,omitempty"`
}

// WriteManifest encodes discovery as a YAML manifest.
func WriteManifest(w io.Writer, root m.Path, discovery m.Discovery) error {
	manifest := Manifest{
		Root:        string(root),
		EntryPoints: discovery.EntryPoints,
		Diagnostics: discovery.Diagnostics,
	}

	if manifest.EntryPoints == nil {
		manifest.EntryPoints = []m.EntryPoint{}
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(manifest); err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}

	return encoder.Close()
}
