package model

// Environment is the runtime a module is bundled to execute in.
type Environment string

const (
	// EnvironmentIsolate is the default sandboxed isolate runtime.
	EnvironmentIsolate Environment = "isolate"
	// EnvironmentExtended is the opt-in runtime with broader host APIs.
	EnvironmentExtended Environment = "extended"
)

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentIsolate, EnvironmentExtended:
		return true
	default:
		return false
	}
}

// Kind categorizes an entry point by the role its file name reserves.
type Kind string

const (
	// KindFunction is a regular module exporting functions.
	KindFunction Kind = "function-module"
	// KindHTTP is the root http router module.
	KindHTTP Kind = "http-module"
	// KindCron is the root crons module.
	KindCron Kind = "cron-module"
	// KindSchema is the root schema module.
	KindSchema Kind = "schema-module"
)

// Reserved reports whether the kind is one of the root-reserved kinds.
func (k Kind) Reserved() bool {
	return k == KindHTTP || k == KindCron || k == KindSchema
}

// EntryPoint describes a deployable source file found during discovery.
type EntryPoint struct {
	Path        SourcePath  `json:"path" yaml:"path"`
	Environment Environment `json:"environment" yaml:"environment"`
	Kind        Kind        `json:"kind" yaml:"kind"`
}

// EnvironmentSet splits entry points by environment. Order within each
// group is the discovery order.
type EnvironmentSet struct {
	Isolate  []EntryPoint
	Extended []EntryPoint
}

// Platform selects which host built-ins the bundling engine treats as
// provided by the runtime.
type Platform string

const (
	// PlatformBrowser targets the isolate runtime.
	PlatformBrowser Platform = "browser"
	// PlatformExtended targets the extended runtime.
	PlatformExtended Platform = "extended"
)

// PlatformFor returns the bundling platform for an environment.
func PlatformFor(env Environment) Platform {
	if env == EnvironmentExtended {
		return PlatformExtended
	}

	return PlatformBrowser
}
