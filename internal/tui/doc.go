// Package tui provides the Terminal User Interface for audioshelf.
//
// The interface is split over a handful of subpackages that meet in a single
// dispatch loop. This package only carries the overview below.
//
// # Architecture
//
// Terminal (internal/tui/terminal/):
//   - Owns raw mode and the alternate screen through a Bubble Tea program
//   - Merges key, mouse, resize and focus input with the tick and render
//     timers into one event stream
//   - Restores the terminal on exit, suspend and panic
//
// Controller (internal/tui/controller/):
//   - Pulls one event at a time and resolves keys through the keymap
//   - Runs the FIFO action queue; follow-up actions join its back
//   - Drains actions sent from background goroutines before the next event
//   - Composes every frame from the drawing components
//
// Components (internal/tui/components/):
//   - LibraryTable: the audiobook list with wrap-around selection
//   - Status: tick and frame rates, last error, recent log lines, key help
//   - LibraryWatcher: reports edits of the library file
//
// Model (internal/tui/model/):
//   - Action, Event, Key and Mode value types shared by everything above
//
// # Action Flow
//
//  1. The terminal produces an event (a key press, a tick, a resize)
//  2. The controller turns it into actions: a single key binding first, the
//     pending key sequence second
//  3. Every component sees the raw event and may answer with an action
//  4. Each queued action is interpreted by the controller, then handed to
//     every component's Update in list order
//  5. Render and Resize actions draw all components into a fresh frame
//
// # Keyboard Navigation
//
// Bindings live in config.yaml per mode and may be multi-key sequences. The
// defaults include:
//
//   - j/Down, k/Up: Move the selection (wrapping around)
//   - g g, G: Jump to the first or last book
//   - Ctrl+f, Ctrl+b: Page down and up
//   - y: Copy the selected title to the clipboard
//   - ?: Toggle the key help
//   - Ctrl+z: Suspend to the shell
//   - q/Ctrl+C: Quit application
//
// # Design System
//
// Colors and text styles come from internal/tui/design/ and are shared by all
// components, so panels, tables and the status strip look alike.
//
// # Usage Example
//
//	term := terminal.New(terminal.TickRate(4), terminal.FrameRate(60))
//	app := controller.New(term, []components.Component{
//	    components.NewLibraryTable(lib),
//	    components.NewStatus(keys, logChannel),
//	}, keys, cfg)
//
//	// Run the TUI (blocks until user quits)
//	if err := app.Run(ctx); err != nil {
//	    return err
//	}
package tui
