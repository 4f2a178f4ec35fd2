// Package watch monitors files and reveals carriers written into them.
package watch

import (
	"context"
	"crypto/sha256"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/wippyai/zwtext/carrier"
	"github.com/wippyai/zwtext/errors"
)

// Event reports the payloads revealed in a file after it changed.
type Event struct {
	Time     time.Time
	Path     string
	Payloads []string
}

// Watcher reveals carriers in a set of files whenever they are written.
// Directories are watched for files created or written inside them.
// A single file is watched through its parent directory, so it stays
// watched when an editor saves it by renaming a temporary file over it.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	events    chan Event
	errors    chan error
	seen      map[string][sha256.Size]byte
	dirs      map[string]bool
	files     map[string]bool
	paths     []string
	maxSize   int64
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithMaxSize skips files larger than n bytes.
func WithMaxSize(n int64) Option {
	return func(w *Watcher) {
		w.maxSize = n
	}
}

// DefaultMaxSize bounds how much of a changed file is read.
const DefaultMaxSize = 16 << 20

// New creates a watcher for the given files or directories.
func New(paths []string, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, errors.InvalidInput(errors.PhaseWatch, "no paths to watch")
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(errors.PhaseWatch, errors.KindIO, err, "create watcher")
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		paths:     paths,
		maxSize:   DefaultMaxSize,
		seen:      make(map[string][sha256.Size]byte),
		dirs:      make(map[string]bool),
		files:     make(map[string]bool),
		events:    make(chan Event, 16),
		errors:    make(chan error, 4),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatcher.Close()
			return nil, errors.IO(errors.PhaseWatch, p, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			fsWatcher.Close()
			if os.IsNotExist(err) {
				return nil, errors.NotFound(errors.PhaseWatch, "path", p)
			}
			return nil, errors.IO(errors.PhaseWatch, p, err)
		}

		dir := abs
		if info.IsDir() {
			w.dirs[abs] = true
		} else {
			w.files[abs] = true
			dir = filepath.Dir(abs)
		}
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, errors.IO(errors.PhaseWatch, p, err)
		}
	}
	return w, nil
}

// wanted reports whether an event on path concerns a watched file.
func (w *Watcher) wanted(path string) bool {
	return w.files[path] || w.dirs[filepath.Dir(path)]
}

// Events returns the channel of reveal events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the channel of non-fatal errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run processes file events until ctx is cancelled or the watcher is closed.
// The Events and Errors channels are closed when Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer close(w.errors)

	Logger().Debug("watching", zap.Strings("paths", w.paths))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			// Atomic saves show up as Create or Rename on the target name.
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !w.wanted(event.Name) {
				continue
			}
			if ev, ok := w.check(event.Name); ok {
				select {
				case w.events <- ev:
				case <-ctx.Done():
					return ctx.Err()
				}
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.report(errors.Wrap(errors.PhaseWatch, errors.KindIO, err, "watch"))
		}
	}
}

// check reads a changed file and returns an event when it holds new payloads.
func (w *Watcher) check(path string) (Event, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Event{}, false
	}
	if info.Size() > w.maxSize {
		Logger().Debug("skipping large file",
			zap.String("path", path),
			zap.Int64("size", info.Size()))
		return Event{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		w.report(errors.IO(errors.PhaseWatch, path, err))
		return Event{}, false
	}

	sum := sha256.Sum256(data)
	if prev, ok := w.seen[path]; ok && prev == sum {
		return Event{}, false
	}
	w.seen[path] = sum

	payloads := carrier.Extract(string(data))
	if len(payloads) == 0 {
		return Event{}, false
	}

	Logger().Debug("revealed",
		zap.String("path", path),
		zap.Int("payloads", len(payloads)))
	return Event{Time: time.Now(), Path: path, Payloads: payloads}, true
}

func (w *Watcher) report(err error) {
	select {
	case w.errors <- err:
	default:
		Logger().Warn("dropping watch error", zap.Error(err))
	}
}

// Close stops watching. Run returns once the underlying watcher shuts down.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
