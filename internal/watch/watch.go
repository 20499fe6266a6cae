// Package watch re-runs a callback when JavaScript or TypeScript sources
// change on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/reactlint/internal/loader"
	"github.com/leapstack-labs/reactlint/pkg/parser"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before calling back.
const DefaultDebounce = 100 * time.Millisecond

// ChangeFunc is called with the sorted, de-duplicated changed paths.
type ChangeFunc func(ctx context.Context, paths []string) error

// Watcher watches directory trees for source changes.
type Watcher struct {
	roots    []string
	dirs     []string // watched tree roots
	exclude  []string
	baseDir  string
	debounce time.Duration
	logger   *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithExclude drops changes under doublestar patterns, matched relative to
// baseDir the same way discovery matches them.
func WithExclude(baseDir string, patterns []string) Option {
	return func(w *Watcher) {
		w.baseDir = baseDir
		w.exclude = patterns
	}
}

// WithLogger sets the logger; the default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher over roots. File roots watch their directory.
func New(roots []string, opts ...Option) *Watcher {
	w := &Watcher{
		roots:    roots,
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run watches until ctx is cancelled. Callback errors are logged and do
// not stop the watcher.
func (w *Watcher) Run(ctx context.Context, onChange ChangeFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	for _, root := range w.roots {
		dir := root
		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", root, err)
		}
		if !info.IsDir() {
			dir = filepath.Dir(root)
		}
		w.dirs = append(w.dirs, dir)
		if err := w.watchDir(watcher, dir, dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.logger.Debug("watching", slog.Any("roots", w.roots))
	return w.watchLoop(ctx, watcher, onChange)
}

// watchDir recursively adds dir, which lies inside the tree rooted at
// root, to the watcher.
func (w *Watcher) watchDir(watcher *fsnotify.Watcher, root, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && w.skipDir(root, path) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

// skipDir applies the discovery rules to a directory below root.
func (w *Watcher) skipDir(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	return loader.SkipDir(rel) || loader.Excluded(w.exclude, w.baseDir, path)
}

// rootOf returns the watched tree containing path.
func (w *Watcher) rootOf(path string) (string, bool) {
	for _, dir := range w.dirs {
		rel, err := filepath.Rel(dir, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return dir, true
		}
	}
	return "", false
}

// watchLoop handles file system events.
func (w *Watcher) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, onChange ChangeFunc) error {
	pending := make(map[string]bool)

	// Debounce timer; nil channel blocks until armed.
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if root, ok := w.rootOf(event.Name); ok && !w.skipDir(root, event.Name) {
						if err := w.watchDir(watcher, root, event.Name); err != nil {
							w.logger.Warn("failed to watch new directory",
								slog.String("path", event.Name), slog.String("error", err.Error()))
						}
					}
					continue
				}
			}

			if !parser.IsSupported(event.Name) || loader.Excluded(w.exclude, w.baseDir, event.Name) {
				continue
			}

			pending[event.Name] = true

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			sort.Strings(paths)
			clear(pending)

			w.logger.Debug("change detected", slog.Int("files", len(paths)))
			if err := onChange(ctx, paths); err != nil {
				w.logger.Error("change handler failed", slog.String("error", err.Error()))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}
