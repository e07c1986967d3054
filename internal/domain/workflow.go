package domain

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// BuildArgs configures a discovery and bundling pass.
type BuildArgs struct {
	DiscoverArgs
	SourceMaps bool
}

// PackageArgs configures a build that is written to a source package.
type PackageArgs struct {
	BuildArgs
	Output m.Path
}

// WatchArgs configures watch mode. OnBuild is called after the initial
// build and after every rebuild.
type WatchArgs struct {
	BuildArgs
	OnBuild func(result m.BuildResult, err error)
}

// Workflow is the top-level discovery and build pipeline.
type Workflow interface {
	Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error)
	Build(ctx context.Context, args BuildArgs) (m.BuildResult, error)
	Package(ctx context.Context, args PackageArgs) (m.BuildResult, adapter.PackageInfo, error)
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	fsAdapter    adapter.SourceFSAdapter
	packageStore adapter.PackageStore
	watcher      adapter.Watcher
	discoverer   Discoverer
	orch         Orchestrator
	logger       *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	packageStore adapter.PackageStore,
	watcher adapter.Watcher,
	discoverer Discoverer,
	orch Orchestrator,
	logger *zap.Logger,
) Workflow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &workflow{
		fsAdapter:    fsAdapter,
		packageStore: packageStore,
		watcher:      watcher,
		discoverer:   discoverer,
		orch:         orch,
		logger:       logger,
	}
}

func (w *workflow) Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error) {
	return w.discoverer.Discover(ctx, args)
}

// Build discovers entry points and bundles each environment. Diagnostics
// are returned alongside the bundles and never fail the build.
func (w *workflow) Build(ctx context.Context, args BuildArgs) (m.BuildResult, error) {
	discovery, err := w.discoverer.Discover(ctx, args.DiscoverArgs)
	if err != nil {
		return m.BuildResult{}, err
	}

	root, err := adapter.AbsRoot(w.fsAdapter, args.Root)
	if err != nil {
		return m.BuildResult{}, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	set, err := Partition(discovery.EntryPoints)
	if err != nil {
		return m.BuildResult{Diagnostics: discovery.Diagnostics}, err
	}

	result := m.BuildResult{Diagnostics: discovery.Diagnostics}

	g, gctx := errgroup.WithContext(ctx)
	if !w.orch.SupportsConcurrentBuilds() {
		g.SetLimit(1)
	}

	g.Go(func() error {
		bundles, err := w.orch.Bundle(gctx, BundleArgs{
			Root:        root,
			EntryPoints: set.Isolate,
			SourceMaps:  args.SourceMaps,
			Platform:    m.PlatformFor(m.EnvironmentIsolate),
		})
		result.Isolate = bundles

		return err
	})

	g.Go(func() error {
		bundles, err := w.orch.Bundle(gctx, BundleArgs{
			Root:        root,
			EntryPoints: set.Extended,
			SourceMaps:  args.SourceMaps,
			Platform:    m.PlatformFor(m.EnvironmentExtended),
		})
		result.Extended = bundles

		return err
	})

	if err := g.Wait(); err != nil {
		return m.BuildResult{Diagnostics: discovery.Diagnostics}, err
	}

	w.logger.Info("build finished",
		zap.Int("isolateModules", len(result.Isolate)),
		zap.Int("extendedModules", len(result.Extended)),
		zap.Int("diagnostics", len(result.Diagnostics)),
	)

	return result, nil
}

// Package builds and writes the modules of both environments to args.Output.
func (w *workflow) Package(ctx context.Context, args PackageArgs) (m.BuildResult, adapter.PackageInfo, error) {
	if args.Output == "" {
		return m.BuildResult{}, adapter.PackageInfo{}, fmt.Errorf("package output path is required")
	}

	result, err := w.Build(ctx, args.BuildArgs)
	if err != nil {
		return result, adapter.PackageInfo{}, err
	}

	info, err := w.packageStore.Save(args.Output, result.Modules())
	if err != nil {
		return result, adapter.PackageInfo{}, fmt.Errorf("save package: %w", err)
	}

	return result, info, nil
}

// Watch builds once, then rebuilds whenever a non-ignored file under the
// root changes, until ctx is canceled.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	root, err := adapter.AbsRoot(w.fsAdapter, args.Root)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	onBuild := args.OnBuild
	if onBuild == nil {
		onBuild = func(m.BuildResult, error) {}
	}

	onBuild(w.Build(ctx, args.BuildArgs))

	dirs, err := w.watchDirs(root, args.Ignore)
	if err != nil {
		return err
	}

	return w.watcher.Watch(ctx, adapter.WatchOptions{
		Dirs: dirs,
		Include: func(path string, isDir bool) bool {
			rel, err := w.fsAdapter.RelPath(root, m.Path(path))
			if err != nil {
				return false
			}

			return !args.Ignore.SkipPath(string(rel), isDir)
		},
		OnChange: func(changed []m.Path) {
			w.logger.Info("rebuilding", zap.Int("changed", len(changed)))
			onBuild(w.Build(ctx, args.BuildArgs))
		},
	})
}

// watchDirs lists root and every directory discovery would descend into.
func (w *workflow) watchDirs(root m.Path, policy IgnorePolicy) ([]m.Path, error) {
	dirs := []m.Path{}

	err := w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.IsDir() {
			return nil
		}

		if path != string(root) && policy.SkipDir(info.Name()) {
			return adapter.SkipDir
		}

		dirs = append(dirs, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list watch directories: %w", err)
	}

	return dirs, nil
}
