// Package watch reports changes to a fixed set of files, debounced so an
// editor's write-rename-chmod burst triggers a single callback.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultDebounce is the quiet period before pending changes are reported.
const DefaultDebounce = 100 * time.Millisecond

// ErrClosed is returned by Run when the underlying watcher was closed.
var ErrClosed = errors.New("watcher closed")

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger. nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// Watcher watches files through their parent directories, so files replaced
// by rename keep being tracked.
type Watcher struct {
	fs       *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration
	files    map[string]string // absolute path to the path as given
}

// New starts watching paths. Every path must name a file whose directory
// exists.
func New(paths []string, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:       fs,
		log:      logger.NewNop(),
		debounce: DefaultDebounce,
		files:    make(map[string]string, len(paths)),
	}
	for _, opt := range opts {
		opt(w)
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", p, err)
		}
		w.files[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling onChange once per changed file
// after each quiet period. onChange receives the path as it was passed to
// New. Callback errors are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context, onChange func(path string) error) error {
	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return ErrClosed
			}
			path, ok := w.lookup(ev)
			if !ok {
				continue
			}
			w.log.DebugContext(ctx, "file event", slog.String("path", path), slog.String("op", ev.Op.String()))
			pending[path] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return ErrClosed
			}
			w.log.WarnContext(ctx, "file watcher error", logger.Error(err))

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			for _, p := range changed {
				if err := onChange(p); err != nil {
					w.log.ErrorContext(ctx, "change handler failed", slog.String("path", p), logger.Error(err))
				}
			}
		}
	}
}

// lookup maps a write or create event on a watched file back to the path
// given to New.
func (w *Watcher) lookup(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return "", false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return "", false
	}
	path, ok := w.files[abs]
	return path, ok
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fs.Close()
}
