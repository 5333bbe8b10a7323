// Package watch reloads a catalog file when it changes on disk.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"webterm/internal/catalog"
	"webterm/internal/log"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the bursts of events editors emit on save
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc receives every successfully parsed catalog
type ReloadFunc func(*catalog.Catalog)

// Status reports what the watcher has done so far
type Status struct {
	Running    bool      // Whether the event loop is active
	Path       string    // Catalog file being watched
	LastReload time.Time // Time of the last successful reload
	Reloads    int       // Successful reloads
	LastError  error     // Error of the last failed reload, nil after a success
}

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounce sets how long the watcher waits for events to settle
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher monitors one catalog file using fsnotify. It watches the parent
// directory so files replaced by rename are still picked up.
type Watcher struct {
	path     string
	onReload ReloadFunc
	debounce time.Duration

	fsWatcher *fsnotify.Watcher
	closeOnce sync.Once
	closeErr  error

	mutex  sync.RWMutex
	status Status
}

// New creates a watcher for the catalog file at path. The fsnotify handle is
// released by Run when it returns, or by Close for a watcher that never runs.
func New(path string, onReload ReloadFunc, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving catalog path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("error accessing catalog file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", abs)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:      abs,
		onReload:  onReload,
		debounce:  DefaultDebounce,
		fsWatcher: fsWatcher,
		status:    Status{Path: abs},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Run processes file events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	w.mutex.Lock()
	if w.status.Running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.status.Running = true
	w.mutex.Unlock()

	logger := log.LogWithFields(log.F("file", w.path))
	logger.Info("Watching catalog file")

	defer func() {
		if err := w.Close(); err != nil {
			logger.WithError(err).Error("Error closing fsnotify watcher")
		}
		w.mutex.Lock()
		w.status.Running = false
		w.mutex.Unlock()
		logger.Info("Watcher stopped")
	}()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if err := w.Reload(); err != nil {
				logger.WithError(err).Warn("Catalog reload failed, keeping previous catalog")
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.WithError(err).Error("fsnotify watcher error")

		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		}
	}
}

// Reload parses the catalog file and hands it to the reload callback. On
// failure the callback is not called.
func (w *Watcher) Reload() error {
	c, err := catalog.LoadFile(w.path)

	w.mutex.Lock()
	w.status.LastError = err
	if err == nil {
		w.status.Reloads++
		w.status.LastReload = time.Now()
	}
	w.mutex.Unlock()

	if err != nil {
		return err
	}
	if w.onReload != nil {
		w.onReload(c)
	}
	log.LogWithFields(log.F("file", w.path)).Info("Catalog reloaded")
	return nil
}

// Close releases the fsnotify handle. A running watcher stops; calling Close
// more than once is safe.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsWatcher.Close()
	})
	return w.closeErr
}

// Status returns a snapshot of the watcher state
func (w *Watcher) Status() Status {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.status
}

// Path returns the absolute path of the watched file
func (w *Watcher) Path() string {
	return w.path
}
