package components

import (
	"errors"
	"sync"
	"time"

	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
	"audioshelf/internal/watch"
	"audioshelf/pkg/logging"
)

// LibraryWatcher reports edits of the library file with a LibraryChanged
// action. It draws nothing and talks to the dispatcher only through the
// action sender.
type LibraryWatcher struct {
	path     string
	debounce time.Duration

	sender  ActionSender
	watcher *watch.Watcher
	wg      sync.WaitGroup
}

// NewLibraryWatcher watches path; an empty path disables the watcher.
func NewLibraryWatcher(path string) *LibraryWatcher {
	return &LibraryWatcher{path: path, debounce: watch.DefaultDebounce}
}

func (w *LibraryWatcher) Name() string { return "LibraryWatcher" }

func (w *LibraryWatcher) RegisterActionHandler(sender ActionSender) error {
	w.sender = sender
	return nil
}

func (w *LibraryWatcher) Init(view.Rect) error {
	if w.path == "" {
		return nil
	}
	if w.sender == nil {
		return errors.New("library watcher has no action sender")
	}

	watcher, err := watch.New(w.debounce)
	if err != nil {
		return err
	}
	return w.start(watcher)
}

// start watches the library file with watcher and forwards its changes. The
// watcher is released when it cannot be started.
func (w *LibraryWatcher) start(watcher *watch.Watcher) error {
	if err := watcher.AddFile(w.path); err != nil {
		watcher.Stop()
		return err
	}
	if err := watcher.Start(); err != nil {
		watcher.Stop()
		return err
	}
	w.watcher = watcher

	w.wg.Add(1)
	go w.forward(watcher.FileChannel())
	return nil
}

func (w *LibraryWatcher) forward(mods <-chan watch.FileModification) {
	defer w.wg.Done()
	for mod := range mods {
		logging.Info("LibraryWatcher", "Library file %s changed (%s)", mod.Path, mod.Op)
		if err := w.sender.Send(model.LibraryChanged(w.path)); err != nil {
			logging.Debug("LibraryWatcher", "Dropping change notice: %v", err)
			return
		}
	}
}

func (w *LibraryWatcher) Close() error {
	if w.watcher == nil {
		return nil
	}
	w.watcher.Stop()
	w.wg.Wait()
	w.watcher = nil
	return nil
}
