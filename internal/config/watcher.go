package config

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes on disk and fans the new
// configuration out to registered callbacks. A reload that fails to parse
// or validate is logged and dropped; the last good config stays in effect.
type Watcher struct {
	path     string
	log      *log.Logger
	fs       *fsnotify.Watcher
	debounce *debouncer

	mu        sync.Mutex
	current   Config
	callbacks []func(Config)
	closed    bool
}

// NewWatcher starts watching the file at path. initial is the config in
// effect until the first successful reload, typically the result of Load
// on the same path.
func NewWatcher(path string, initial Config, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start config watcher: %w", err)
	}
	// Editors replace the file on save, which drops a watch placed on the
	// file itself. Watch the directory and filter events by name instead.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		path:     path,
		log:      logger,
		fs:       fw,
		debounce: newDebouncer(0),
		current:  initial,
	}
	go w.run()
	return w, nil
}

// OnChange registers fn to be called with each successfully reloaded
// config. Callbacks run on the watcher's goroutine.
func (w *Watcher) OnChange(fn func(Config)) {
	if fn == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

// Current returns the config most recently loaded without error.
func (w *Watcher) Current() Config {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()
	w.debounce.cancel()
	return w.fs.Close()
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != filepath.Base(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.log.Debug("config file changed", "op", ev.Op.String(), "file", ev.Name)
			w.debounce.trigger(w.reload)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) reload() {
	next, err := Load(w.path)
	if err != nil {
		w.log.Warn("config reload failed, keeping previous", "err", err)
		return
	}
	w.log.Debug("config reloaded", "path", w.path)
	w.mu.Lock()
	w.current = next
	w.notifyLocked()
}

// notifyLocked copies the callbacks and config, releases the lock, then
// notifies. Must be called with w.mu held; returns with it released.
func (w *Watcher) notifyLocked() {
	cfg := w.current
	callbacks := make([]func(Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
}
