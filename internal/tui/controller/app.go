// Package controller runs the dispatch loop.
//
// An App pulls one event at a time from the terminal, turns it into actions
// (resolving key sequences through the keymap), hands the event to every
// component and then drains the action queue: each action is interpreted by
// the App first and then passed to every component's Update, whose
// follow-up actions join the back of the same queue. Only when the queue
// and the external action channel are both empty is the next event pulled.
package controller

import (
	"context"
	"errors"
	"fmt"

	"audioshelf/internal/config"
	"audioshelf/internal/tui/components"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
)

// Terminal is the event source and drawing target the App drives.
type Terminal interface {
	Enter() error
	Exit() error
	Suspend() error
	Stop() error
	Next(ctx context.Context) (model.Event, bool)
	Size() (width, height int)
	Resize(width, height int) error
	Draw(fn func(*view.Frame)) error
	Clear() error
}

// State is the lifecycle state of an App.
type State int

const (
	StateRunning State = iota
	StateSuspended
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateSuspended:
		return "Suspended"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// App owns the terminal session, the components and the keybinding table.
type App struct {
	term  Terminal
	comps []components.Component
	keys  *keymap.Table
	cfg   config.Config

	sender *actionSender

	mode          model.Mode
	state         State
	pending       model.KeySequence
	queue         []model.Action
	shouldQuit    bool
	shouldSuspend bool
}

// New creates an App. Components are called in the order given, which is
// also their drawing order.
func New(term Terminal, comps []components.Component, keys *keymap.Table, cfg config.Config) *App {
	return &App{
		term:   term,
		comps:  comps,
		keys:   keys,
		cfg:    cfg,
		sender: newActionSender(),
		mode:   model.ModeHome,
		state:  StateRunning,
	}
}

// Run enters the terminal and processes events until a Quit action, the
// end of the event stream or a fatal error. The terminal is restored on
// every return path.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.term.Enter(); err != nil {
		a.state = StateStopped
		return errors.Join(fmt.Errorf("entering terminal: %w", err), a.term.Exit())
	}
	defer func() {
		if exitErr := a.term.Exit(); exitErr != nil {
			err = errors.Join(err, fmt.Errorf("restoring terminal: %w", exitErr))
		}
		a.sender.close()
		err = errors.Join(err, a.closeComponents())
		a.state = StateStopped
	}()

	if err := a.setup(); err != nil {
		return err
	}
	logInfo("Dispatcher started with %d components", len(a.comps))

	for {
		ev, ok := a.term.Next(ctx)
		if !ok {
			logInfo("Event stream ended, shutting down")
			return a.stop()
		}
		if err := a.handleEvent(ev); err != nil {
			return err
		}
		if err := a.drain(); err != nil {
			return err
		}

		if a.shouldSuspend {
			if err := a.suspend(); err != nil {
				return err
			}
		}
		if a.shouldQuit {
			logInfo("Quit requested, shutting down")
			return a.stop()
		}
	}
}

func (a *App) setup() error {
	for _, c := range a.comps {
		if r, ok := c.(components.ActionHandlerRegistrar); ok {
			if err := r.RegisterActionHandler(a.sender); err != nil {
				return fmt.Errorf("%s: registering action handler: %w", c.Name(), err)
			}
		}
	}
	for _, c := range a.comps {
		if r, ok := c.(components.ConfigRegistrar); ok {
			if err := r.RegisterConfigHandler(a.cfg); err != nil {
				return fmt.Errorf("%s: registering config: %w", c.Name(), err)
			}
		}
	}

	regions := components.Layout(a.comps, a.screen())
	for i, c := range a.comps {
		if in, ok := c.(components.Initializer); ok {
			if err := in.Init(regions[i]); err != nil {
				return fmt.Errorf("%s: init: %w", c.Name(), err)
			}
		}
	}
	return nil
}

// suspend yields the terminal, queues Resume and ClearScreen, takes the
// terminal back and drains the queue before the next event is read.
func (a *App) suspend() error {
	logInfo("Suspending")
	a.state = StateSuspended
	if err := a.term.Suspend(); err != nil {
		return fmt.Errorf("suspending terminal: %w", err)
	}
	a.enqueue(model.Resume())
	a.enqueue(model.ClearScreen())
	if err := a.term.Enter(); err != nil {
		return fmt.Errorf("re-entering terminal: %w", err)
	}
	a.state = StateRunning
	a.pending = nil
	logInfo("Resumed")
	return a.drain()
}

func (a *App) stop() error {
	a.state = StateStopped
	if err := a.term.Stop(); err != nil {
		return fmt.Errorf("stopping terminal: %w", err)
	}
	return nil
}

func (a *App) closeComponents() error {
	var errs []error
	for _, c := range a.comps {
		if cl, ok := c.(components.Closer); ok {
			if err := cl.Close(); err != nil {
				logError(err, "Failed to close %s", c.Name())
				errs = append(errs, fmt.Errorf("%s: close: %w", c.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}

func (a *App) screen() view.Rect {
	w, h := a.term.Size()
	return view.NewRect(0, 0, w, h)
}

// Sender returns the handle components use to queue actions from outside
// the loop.
func (a *App) Sender() components.ActionSender {
	return a.sender
}

// State returns the lifecycle state.
func (a *App) State() State {
	return a.state
}

// Mode returns the active keybinding mode.
func (a *App) Mode() model.Mode {
	return a.mode
}

// PendingKeys returns a copy of the keys waiting to complete a multi-key
// binding.
func (a *App) PendingKeys() model.KeySequence {
	return append(model.KeySequence(nil), a.pending...)
}
