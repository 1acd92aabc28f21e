package symbols

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/logger"
)

// Watcher watches a symbol table file for changes and triggers reload
// callbacks with the freshly loaded table.
type Watcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called after the watched file reloads successfully.
// It receives the new table and returns any error.
type ReloadCallback func(Table) error

// NewWatcher creates a watcher for the table file at path.
func NewWatcher(path string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating fsnotify watcher")
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "watching symbol table %s", path)
	}

	return &Watcher{
		path:           path,
		watcher:        watcher,
		callbacks:      make([]ReloadCallback, 0),
		debouncePeriod: 500 * time.Millisecond, // Debounce rapid file changes
	}, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// OnReload registers a callback to be called when the table is reloaded
func (w *Watcher) OnReload(callback ReloadCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start begins watching for table file changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

// watchLoop monitors file system events
func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Editors typically write in place or replace the file, so both
			// Write and Create count as a change.
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("symbol table change detected",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				w.scheduleReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("symbol table watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Cancel existing timer if any
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	// Schedule reload after debounce period
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.reload(); err != nil {
			logger.Errorw("symbol table reload failed",
				logger.FieldFile, w.path,
				logger.FieldError, err)
		}
	})
}

// reload loads the table and calls all callbacks
func (w *Watcher) reload() error {
	table, err := Load(w.path)
	if err != nil {
		return err
	}

	logger.Infow("symbol table reloaded",
		logger.FieldFile, w.path,
		logger.FieldSymbols, table.Len())

	w.mu.RLock()
	callbacks := make([]ReloadCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(table); err != nil {
			logger.Warnw("symbol table reload callback error",
				logger.FieldError, err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching for table changes
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
