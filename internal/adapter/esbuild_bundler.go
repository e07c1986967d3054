package adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/evanw/esbuild/pkg/api"
	"go.uber.org/zap"

	m "github.com/mouse-blink/fnpack/internal/model"
)

// outDirName is the virtual output directory handed to esbuild. Nothing is
// written there since builds run with Write disabled.
const outDirName = ".fnpack-out"

// EsbuildBundler implements Bundler with esbuild's Go API.
type EsbuildBundler struct {
	logger *zap.Logger
}

// NewEsbuildBundler constructs an EsbuildBundler.
func NewEsbuildBundler(logger *zap.Logger) *EsbuildBundler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &EsbuildBundler{logger: logger}
}

// SupportsConcurrentBuilds is true; esbuild builds are independent.
func (b *EsbuildBundler) SupportsConcurrentBuilds() bool {
	return true
}

// ResolveAndBundle bundles entryPoints found under root.
func (b *EsbuildBundler) ResolveAndBundle(
	ctx context.Context,
	root m.Path,
	entryPoints []m.SourcePath,
	opts BundleOptions,
) ([]EngineOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outdir := filepath.Join(string(root), outDirName)

	buildCtx, ctxErr := api.Context(b.buildOptions(root, outdir, entryPoints, opts))
	if ctxErr != nil {
		return nil, NewEngineError(convertMessages(ctxErr.Errors))
	}
	defer buildCtx.Dispose()

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			buildCtx.Cancel()
		case <-done:
		}
	}()

	start := time.Now()
	result := buildCtx.Rebuild()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(result.Errors) > 0 {
		return nil, NewEngineError(convertMessages(result.Errors))
	}

	outputs := make([]EngineOutput, 0, len(result.OutputFiles))

	for _, file := range result.OutputFiles {
		rel, err := filepath.Rel(outdir, file.Path)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", file.Path, err)
		}

		outputs = append(outputs, EngineOutput{
			Path:     filepath.ToSlash(rel),
			Contents: file.Contents,
		})
	}

	b.logger.Debug("esbuild finished",
		zap.String("platform", string(opts.Platform)),
		zap.Int("entryPoints", len(entryPoints)),
		zap.Int("outputs", len(outputs)),
		zap.Int("warnings", len(result.Warnings)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return outputs, nil
}

func (b *EsbuildBundler) buildOptions(root m.Path, outdir string, entryPoints []m.SourcePath, opts BundleOptions) api.BuildOptions {
	entries := make([]string, 0, len(entryPoints))
	for _, ep := range entryPoints {
		entries = append(entries, string(ep.HostPath(root)))
	}

	options := api.BuildOptions{
		AbsWorkingDir: string(root),
		EntryPoints:   entries,
		Bundle:        true,
		Write:         false,
		Outdir:        outdir,
		Outbase:       string(root),
		Format:        api.FormatESModule,
		Splitting:     true,
		Target:        api.ESNext,
		LogLevel:      api.LogLevelSilent,
		Sourcemap:     api.SourceMapNone,
	}

	switch opts.Platform {
	case m.PlatformExtended:
		options.Platform = api.PlatformNode
		options.ChunkNames = m.DepsDir + "/node/[name]-[hash]"
	default:
		options.Platform = api.PlatformBrowser
		options.ChunkNames = m.DepsDir + "/[name]-[hash]"
	}

	if opts.SourceMaps {
		options.Sourcemap = api.SourceMapExternal
	}

	return options
}

func convertMessages(messages []api.Message) []EngineMessage {
	out := make([]EngineMessage, 0, len(messages))

	for _, msg := range messages {
		converted := EngineMessage{Text: msg.Text}
		if msg.Location != nil {
			converted.File = msg.Location.File
			converted.Line = msg.Location.Line
			converted.Column = msg.Location.Column
		}

		out = append(out, converted)
	}

	return out
}
