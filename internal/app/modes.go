package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"audioshelf/internal/library"
	"audioshelf/internal/tui/components"
	"audioshelf/internal/tui/controller"
	"audioshelf/internal/tui/design"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/terminal"
	"audioshelf/pkg/logging"
)

const logFileName = "audioshelf.log"

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, a *Application) error {
	settings := *a.config.Settings

	// Initialize design system for TUI (dark mode by default)
	design.Initialize(true)

	logLevel, ok := logging.ParseLevel(settings.LogLevel)
	if !ok && settings.LogLevel != "" {
		logging.Warn("CLI", "Unknown log level %q, using info", settings.LogLevel)
	}

	// The terminal belongs to the UI from here on; logs go to a file and to
	// the status strip.
	sink, closeSink := openLogFile(settings.DataDir)
	defer closeSink()
	logChan := logging.InitForTUI(logLevel, sink)
	defer logging.CloseTUIChannel()

	term := terminal.New(
		terminal.TickRate(settings.TickRate),
		terminal.FrameRate(settings.FrameRate),
		terminal.WithMouse(settings.Mouse),
	)
	defer restoreOnPanic(term)

	comps := buildComponents(a.library, a.keys, logChan)
	dispatcher := controller.New(term, comps, a.keys, settings)

	logging.Info("TUI-Lifecycle", "Starting TUI with %d audiobooks", a.library.Len())
	if err := dispatcher.Run(ctx); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")

	if n := logging.Dropped(); n > 0 {
		logging.Debug("TUI-Lifecycle", "%d log entries did not reach the status strip", n)
	}
	return nil
}

// buildComponents returns the components in update and drawing order.
func buildComponents(lib *library.Library, keys *keymap.Table, logs <-chan logging.LogEntry) []components.Component {
	return []components.Component{
		components.NewLibraryTable(lib),
		components.NewStatus(keys, logs),
		components.NewLibraryWatcher(lib.File),
	}
}

// openLogFile opens the log file in dir for appending. Without a usable
// directory the logs are discarded.
func openLogFile(dir string) (io.Writer, func()) {
	if dir == "" {
		return io.Discard, func() {}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create data directory %s: %v\n", dir, err)
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open log file: %v\n", err)
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}

// restoreOnPanic gives the terminal back before a panic reaches the
// runtime, so the trace is printed onto a usable screen.
func restoreOnPanic(term interface{ Exit() error }) {
	if r := recover(); r != nil {
		if err := term.Exit(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to restore terminal: %v\n", err)
		}
		logging.Error("TUI-Lifecycle", fmt.Errorf("%v", r), "Panic in TUI")
		panic(r)
	}
}
