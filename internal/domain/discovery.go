package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/fnpack/internal/adapter"
	m "github.com/mouse-blink/fnpack/internal/model"
)

// DefaultServerModule is the module specifier the HTTP router is imported from.
const DefaultServerModule = "convex/server"

const (
	routerSymbol       = "httpRouter"
	misnamedRouterStem = "https"
)

// ErrInvalidRoot is returned when the discovery root is missing or is
// not a directory.
var ErrInvalidRoot = errors.New("invalid root")

// DiscoverArgs configures a discovery pass.
type DiscoverArgs struct {
	Root         m.Path
	Ignore       IgnorePolicy
	ServerModule string
	// Parallel bounds concurrent file reads. Non-positive uses GOMAXPROCS.
	Parallel int
}

// Discoverer walks a source tree and describes its entry points.
type Discoverer interface {
	Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error)
}

type discoverer struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *zap.Logger
}

// NewDiscoverer creates a Discoverer reading through fsAdapter.
func NewDiscoverer(fsAdapter adapter.SourceFSAdapter, logger *zap.Logger) Discoverer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &discoverer{fsAdapter: fsAdapter, logger: logger}
}

// candidate is a file that passed the ignore policy and extension check.
type candidate struct {
	rel  m.SourcePath
	host m.Path
}

// fileResult holds what classifying one candidate produced.
type fileResult struct {
	entry       *m.EntryPoint
	diagnostics []m.Diagnostic
}

// Discover walks args.Root. Problems with individual files become
// diagnostics; only an invalid root, a failed walk or cancellation return
// an error.
func (d *discoverer) Discover(ctx context.Context, args DiscoverArgs) (m.Discovery, error) {
	if err := ctx.Err(); err != nil {
		return m.Discovery{}, err
	}

	root, err := adapter.AbsRoot(d.fsAdapter, args.Root)
	if err != nil {
		return m.Discovery{}, fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}

	serverModule := args.ServerModule
	if serverModule == "" {
		serverModule = DefaultServerModule
	}

	candidates, diagnostics, err := d.collect(root, args.Ignore)
	if err != nil {
		return m.Discovery{}, err
	}

	results, err := d.classifyAll(ctx, candidates, serverModule, args.Parallel)
	if err != nil {
		return m.Discovery{}, err
	}

	discovery := m.Discovery{
		EntryPoints: make([]m.EntryPoint, 0, len(results)),
		Diagnostics: diagnostics,
	}

	for _, res := range results {
		discovery.Diagnostics = append(discovery.Diagnostics, res.diagnostics...)
		if res.entry != nil {
			discovery.EntryPoints = append(discovery.EntryPoints, *res.entry)
		}
	}

	discovery.Diagnostics = append(discovery.Diagnostics, duplicateReserved(discovery.EntryPoints)...)

	d.logger.Debug("discovery finished",
		zap.String("root", string(root)),
		zap.Int("entryPoints", len(discovery.EntryPoints)),
		zap.Int("diagnostics", len(discovery.Diagnostics)),
	)

	return discovery, nil
}

// collect walks root sequentially and returns candidates in walk order.
func (d *discoverer) collect(root m.Path, policy IgnorePolicy) ([]candidate, []m.Diagnostic, error) {
	var (
		candidates  []candidate
		diagnostics []m.Diagnostic
	)

	err := d.fsAdapter.Walk(root, func(path string, info os.FileInfo, walkErr error) error {
		if path == string(root) {
			return walkErr
		}

		rel, relErr := d.fsAdapter.RelPath(root, m.Path(path))
		if relErr != nil {
			return relErr
		}

		if info != nil && info.IsDir() && policy.SkipDir(info.Name()) {
			d.logger.Debug("skipping directory", zap.String("path", string(rel)))

			return adapter.SkipDir
		}

		if walkErr != nil {
			diagnostics = append(diagnostics, m.Diagnostic{
				Severity: m.SeverityError,
				Path:     rel,
				Message:  fmt.Sprintf("skipped unreadable path: %v", walkErr),
			})

			return nil
		}

		if info.IsDir() {
			return nil
		}

		if info.Mode()&os.ModeType != 0 && info.Mode()&os.ModeSymlink == 0 {
			return nil
		}

		if policy.SkipFile(info.Name()) || !IsEntryPointExtension(rel.Ext()) {
			d.logger.Debug("skipping file", zap.String("path", string(rel)))

			return nil
		}

		candidates = append(candidates, candidate{rel: rel, host: m.Path(path)})

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return candidates, diagnostics, nil
}

// classifyAll reads and classifies candidates on a bounded worker pool.
// Results keep the candidates' order.
func (d *discoverer) classifyAll(ctx context.Context, candidates []candidate, serverModule string, parallel int) ([]fileResult, error) {
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	results := make([]fileResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = d.classify(c, serverModule)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func (d *discoverer) classify(c candidate, serverModule string) fileResult {
	content, err := d.fsAdapter.ReadFile(c.host)
	if err != nil {
		return fileResult{diagnostics: []m.Diagnostic{{
			Severity: m.SeverityError,
			Path:     c.rel,
			Message:  fmt.Sprintf("skipped unreadable file: %v", err),
		}}}
	}

	source := string(content)
	entry := m.EntryPoint{
		Path:        c.rel,
		Kind:        KindFor(c.rel),
		Environment: m.EnvironmentIsolate,
	}

	var diagnostics []m.Diagnostic

	switch {
	case RequiresIsolate(c.rel):
		if HasExtendedRuntimeDirective(source) {
			diagnostics = append(diagnostics, m.Diagnostic{
				Severity: m.SeverityWarning,
				Path:     c.rel,
				Message:  fmt.Sprintf("ignoring %q directive: %s always runs in the isolate environment", useNodeLiteral, c.rel.Base()),
			})
		}
	case HasExtendedRuntimeDirective(source):
		entry.Environment = m.EnvironmentExtended
	}

	if c.rel.IsRoot() && c.rel.Stem() == misnamedRouterStem && ImportsNamedSymbolFrom(source, routerSymbol, serverModule) {
		diagnostics = append(diagnostics, m.Diagnostic{
			Severity: m.SeverityWarning,
			Path:     c.rel,
			Message: fmt.Sprintf("%s imports %s from %q but %q is not a reserved file name; did you mean http.%s?",
				c.rel.Base(), routerSymbol, serverModule, misnamedRouterStem, c.rel.Ext()),
		})
	}

	d.logger.Debug("classified entry point",
		zap.String("path", string(entry.Path)),
		zap.String("kind", string(entry.Kind)),
		zap.String("environment", string(entry.Environment)),
	)

	return fileResult{entry: &entry, diagnostics: diagnostics}
}

// duplicateReserved warns about every reserved kind defined more than once
// at the root, e.g. both http.js and http.ts.
func duplicateReserved(entryPoints []m.EntryPoint) []m.Diagnostic {
	first := make(map[m.Kind]m.SourcePath)

	var diagnostics []m.Diagnostic

	for _, ep := range entryPoints {
		if !ep.Kind.Reserved() {
			continue
		}

		prev, seen := first[ep.Kind]
		if !seen {
			first[ep.Kind] = ep.Path

			continue
		}

		diagnostics = append(diagnostics, m.Diagnostic{
			Severity: m.SeverityWarning,
			Path:     ep.Path,
			Message:  fmt.Sprintf("%s duplicates %s: only one %s entry point is allowed", ep.Path, prev, ep.Kind),
		})
	}

	return diagnostics
}
