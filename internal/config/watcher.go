package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events an atomic rename produces.
const debounceWindow = 200 * time.Millisecond

// Watcher watches the auth file for changes made by external tools while the
// agent is running. The bound tray mode never changes for the process
// lifetime, so a change only triggers the onChange callback (used to ask the
// user for a restart).
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	onChange  func()
	done      chan struct{}
	closeOnce sync.Once

	debounceMu sync.Mutex
	debounce   *time.Timer
}

// NewWatcher creates a watcher over ~/.now-desktop/ firing onChange whenever
// the auth file is written, created, or removed.
func NewWatcher(onChange func()) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		onChange:  onChange,
		done:      make(chan struct{}),
	}
	return w, nil
}

// Start begins watching. It returns once the watch is registered; events are
// handled on a background goroutine until Close.
func (w *Watcher) Start() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}

	go w.loop()
	return nil
}

func (w *Watcher) loop() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != AuthFileName {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				w.fire()
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("auth file watcher error: %v", err)
		}
	}
}

func (w *Watcher) fire() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(debounceWindow, func() {
		if w.onChange != nil {
			w.onChange()
		}
	})
}

// Close stops watching and releases the underlying watcher.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}
