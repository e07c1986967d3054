package model

// ModuleBundle is one output file of the bundling engine.
type ModuleBundle struct {
	Path        SourcePath
	Content     string
	SourceMap   *string
	Environment Environment
}

// BuildResult holds the bundles for both environments and the diagnostics
// collected while discovering them.
type BuildResult struct {
	Isolate     []ModuleBundle
	Extended    []ModuleBundle
	Diagnostics []Diagnostic
}

// Modules returns every bundle, isolate modules first.
func (r BuildResult) Modules() []ModuleBundle {
	out := make([]ModuleBundle, 0, len(r.Isolate)+len(r.Extended))
	out = append(out, r.Isolate...)

	return append(out, r.Extended...)
}

// WithoutDeps filters out modules in the shared dependency subtree.
func WithoutDeps(modules []ModuleBundle) []ModuleBundle {
	out := make([]ModuleBundle, 0, len(modules))

	for _, module := range modules {
		if module.Path.IsDeps() {
			continue
		}

		out = append(out, module)
	}

	return out
}
