package adapter

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	m "github.com/mouse-blink/fnpack/internal/model"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchOptions configures a Watch call.
type WatchOptions struct {
	// Dirs are watched non-recursively; subdirectories created later are
	// added when Include accepts them.
	Dirs []m.Path
	// Include filters events and new directories. Nil accepts everything.
	Include func(path string, isDir bool) bool
	// OnChange receives each settled batch of changed paths, sorted.
	OnChange func(changed []m.Path)
}

// Watcher reports filesystem changes until its context is canceled.
type Watcher interface {
	Watch(ctx context.Context, opts WatchOptions) error
}

// FSNotifyWatcher implements Watcher on fsnotify with a debounce window.
type FSNotifyWatcher struct {
	debounce time.Duration
	logger   *zap.Logger
}

// NewFSNotifyWatcher constructs a watcher. A non-positive debounce uses
// DefaultDebounce.
func NewFSNotifyWatcher(debounce time.Duration, logger *zap.Logger) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &FSNotifyWatcher{debounce: debounce, logger: logger}
}

// Watch blocks until ctx is done. It returns nil on cancellation.
func (w *FSNotifyWatcher) Watch(ctx context.Context, opts WatchOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	for _, dir := range opts.Dirs {
		if err := watcher.Add(string(dir)); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	include := opts.Include
	if include == nil {
		include = func(string, bool) bool { return true }
	}

	pending := make(map[string]struct{})

	var settle <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			isDir := false
			if info, statErr := os.Stat(event.Name); statErr == nil {
				isDir = info.IsDir()
			}

			if !include(event.Name, isDir) {
				continue
			}

			if isDir && event.Has(fsnotify.Create) {
				if err := watcher.Add(event.Name); err != nil {
					w.logger.Warn("failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}

			pending[event.Name] = struct{}{}
			settle = time.After(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Warn("watch error", zap.Error(err))

		case <-settle:
			settle = nil

			changed := make([]m.Path, 0, len(pending))
			for name := range pending {
				changed = append(changed, m.Path(name))
			}

			pending = make(map[string]struct{})

			sort.Slice(changed, func(i, j int) bool { return changed[i] < changed[j] })

			if opts.OnChange != nil {
				opts.OnChange(changed)
			}
		}
	}
}
