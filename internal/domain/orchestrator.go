package domain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

const sourceMapSuffix = ".map"

// ErrConflictingOutput is returned when the engine emits two different
// files for the same output path.
var ErrConflictingOutput = errors.New("conflicting bundle outputs")

// BundleArgs configures bundling of one environment's entry points.
type BundleArgs struct {
	Root        m.Path
	EntryPoints []m.EntryPoint
	SourceMaps  bool
	Platform    m.Platform
}

// Orchestrator drives the bundling engine for a set of entry points and
// turns its output into module bundles.
type Orchestrator interface {
	Bundle(ctx context.Context, args BundleArgs) ([]m.ModuleBundle, error)
	// SupportsConcurrentBuilds reports whether Bundle may run for two
	// environments at once.
	SupportsConcurrentBuilds() bool
}

type orchestrator struct {
	bundler adapter.Bundler
	logger  *zap.Logger
}

// NewOrchestrator constructs an Orchestrator backed by bundler.
func NewOrchestrator(bundler adapter.Bundler, logger *zap.Logger) Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{bundler: bundler, logger: logger}
}

func (o *orchestrator) SupportsConcurrentBuilds() bool {
	return o.bundler.SupportsConcurrentBuilds()
}

// Bundle invokes the engine once with every entry point so shared
// dependencies are emitted once under _deps. Output is sorted by path.
func (o *orchestrator) Bundle(ctx context.Context, args BundleArgs) ([]m.ModuleBundle, error) {
	if len(args.EntryPoints) == 0 {
		return []m.ModuleBundle{}, nil
	}

	paths := entryPaths(args.EntryPoints)
	start := time.Now()

	outputs, err := o.bundler.ResolveAndBundle(ctx, args.Root, paths, adapter.BundleOptions{
		Platform:   args.Platform,
		SourceMaps: args.SourceMaps,
	})
	if err != nil {
		return nil, fmt.Errorf("bundle %s entry points: %w", args.Platform, err)
	}

	o.logger.Debug("bundled entry points",
		zap.String("platform", string(args.Platform)),
		zap.Int("entryPoints", len(paths)),
		zap.Int("outputs", len(outputs)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return o.collect(outputs, environmentFor(args.Platform), args.SourceMaps)
}

// collect turns engine outputs into bundles, attaching "<path>.map"
// outputs to their module and collapsing identical duplicates.
func (o *orchestrator) collect(outputs []adapter.EngineOutput, env m.Environment, withMaps bool) ([]m.ModuleBundle, error) {
	modules := make(map[m.SourcePath]*m.ModuleBundle, len(outputs))
	maps := make(map[m.SourcePath]string)

	for _, out := range outputs {
		path, err := m.NewSourcePath(out.Path)
		if err != nil {
			return nil, fmt.Errorf("engine output: %w", err)
		}

		if strings.HasSuffix(string(path), sourceMapSuffix) {
			owner := m.SourcePath(strings.TrimSuffix(string(path), sourceMapSuffix))
			if prev, ok := maps[owner]; ok && prev != string(out.Contents) {
				return nil, fmt.Errorf("%w: %s", ErrConflictingOutput, path)
			}

			maps[owner] = string(out.Contents)

			continue
		}

		if prev, ok := modules[path]; ok {
			if prev.Content != string(out.Contents) {
				return nil, fmt.Errorf("%w: %s", ErrConflictingOutput, path)
			}

			continue
		}

		modules[path] = &m.ModuleBundle{Path: path, Content: string(out.Contents), Environment: env}
	}

	if withMaps {
		for owner, sourceMap := range maps {
			module, ok := modules[owner]
			if !ok {
				o.logger.Debug("dropping source map without module", zap.String("path", string(owner)))

				continue
			}

			sm := sourceMap
			module.SourceMap = &sm
		}
	}

	bundles := make([]m.ModuleBundle, 0, len(modules))
	for _, module := range modules {
		bundles = append(bundles, *module)
	}

	sort.Slice(bundles, func(i, j int) bool { return bundles[i].Path < bundles[j].Path })

	return bundles, nil
}

func entryPaths(entryPoints []m.EntryPoint) []m.SourcePath {
	seen := make(map[m.SourcePath]struct{}, len(entryPoints))
	paths := make([]m.SourcePath, 0, len(entryPoints))

	for _, ep := range entryPoints {
		if _, ok := seen[ep.Path]; ok {
			continue
		}

		seen[ep.Path] = struct{}{}
		paths = append(paths, ep.Path)
	}

	return paths
}

func environmentFor(platform m.Platform) m.Environment {
	if platform == m.PlatformExtended {
		return m.EnvironmentExtended
	}

	return m.EnvironmentIsolate
}
