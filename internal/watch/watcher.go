// Package watch notices changes to individual files.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"audioshelf/pkg/logging"
)

const subsystem = "Watch"

// DefaultDebounce coalesces the burst of events an editor produces when it
// saves a file.
const DefaultDebounce = 200 * time.Millisecond

// FileModification represents a change detected by the watcher.
type FileModification struct {
	Path      string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher reports changes to a set of files. The parent directory of every
// file is watched so that files replaced by rename are still followed.
type Watcher struct {
	debounce time.Duration

	// Files being watched, by cleaned absolute path
	files map[string]bool

	fileModChan chan FileModification
	stopChan    chan struct{}
	doneChan    chan struct{}

	fsWatcher *fsnotify.Watcher

	// Lock for running state and the file set
	mutex   sync.RWMutex
	running bool
	closed  bool
}

// New creates a watcher that reports at most one modification per file
// within each debounce window.
func New(debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		debounce:    debounce,
		files:       make(map[string]bool),
		fileModChan: make(chan FileModification, 10),
		stopChan:    make(chan struct{}),
		doneChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddFile starts watching path. The file must exist.
func (w *Watcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("error accessing file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	dir := filepath.Dir(abs)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("failed to add directory %s to watcher: %w", dir, err)
	}

	w.mutex.Lock()
	w.files[abs] = true
	w.mutex.Unlock()

	logging.Debug(subsystem, "Watching file %s", abs)
	return nil
}

// FileChannel returns the channel that delivers file modifications. It is
// closed once the watcher stops.
func (w *Watcher) FileChannel() <-chan FileModification {
	return w.fileModChan
}

// Start begins processing filesystem events.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.running || w.closed {
		return fmt.Errorf("watcher already started")
	}
	w.running = true

	go w.loop()
	return nil
}

func (w *Watcher) watched(name string) bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.files[filepath.Clean(name)]
}

func (w *Watcher) loop() {
	defer close(w.doneChan)
	defer close(w.fileModChan)

	pending := make(map[string]FileModification)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.watched(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			path := filepath.Clean(event.Name)
			mod := pending[path]
			mod.Path = path
			mod.Timestamp = time.Now()
			mod.Op |= event.Op
			pending[path] = mod

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			for path, mod := range pending {
				// Send non-blockingly so a slow consumer cannot stall the loop
				select {
				case w.fileModChan <- mod:
				default:
					logging.Warn(subsystem, "Event channel is full, dropped change of %s", path)
				}
				delete(pending, path)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logging.Error(subsystem, err, "fsnotify watcher error")

		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// Stop halts the watcher and closes the file channel. Stopping twice is a
// no-op; stopping a watcher that was never started only releases it.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return
	}
	w.closed = true
	wasRunning := w.running
	w.running = false
	if wasRunning {
		close(w.stopChan)
	}
	w.mutex.Unlock()

	if err := w.fsWatcher.Close(); err != nil {
		logging.Error(subsystem, err, "Error closing fsnotify watcher")
	}
	if wasRunning {
		<-w.doneChan
	}
}
