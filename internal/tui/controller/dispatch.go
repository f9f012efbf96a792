package controller

import (
	"fmt"

	"audioshelf/internal/tui/components"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
)

func (a *App) enqueue(action model.Action) {
	if action.IsNone() {
		return
	}
	a.queue = append(a.queue, action)
}

// handleEvent queues the action an event stands for and then offers the
// event to every component.
func (a *App) handleEvent(ev model.Event) error {
	if ev.Kind == model.EventKey {
		a.resolveKey(ev.Key)
	} else if action, ok := ev.Action(); ok {
		a.enqueue(action)
	}

	for _, c := range a.comps {
		action, err := components.HandleEvents(c, ev)
		if err != nil {
			return fmt.Errorf("%s: handling %s: %w", c.Name(), ev, err)
		}
		a.enqueue(action)
	}
	return nil
}

// resolveKey tries the key on its own first. Only an unbound key joins the
// pending sequence, which is then tried as a whole.
func (a *App) resolveKey(k model.Key) {
	if action, ok := a.keys.Resolve(a.mode, model.KeySequence{k}); ok {
		a.enqueue(action)
		return
	}

	a.pending = append(a.pending, k)
	if limit := a.keys.MaxSequenceLength(a.mode); len(a.pending) > limit {
		a.pending = a.pending[len(a.pending)-limit:]
	}
	if action, ok := a.keys.Resolve(a.mode, a.pending); ok {
		a.enqueue(action)
	}
}

// drain processes queued actions in order until both the queue and the
// external channel are empty.
func (a *App) drain() error {
	a.queue = a.sender.drainInto(a.queue)
	for len(a.queue) > 0 {
		action := a.queue[0]
		a.queue = a.queue[1:]
		if err := a.process(action); err != nil {
			return err
		}
		if len(a.queue) == 0 {
			a.queue = a.sender.drainInto(a.queue)
		}
	}
	return nil
}

func (a *App) process(action model.Action) error {
	logAction(action)

	switch action.Kind {
	case model.ActionTick:
		a.pending = a.pending[:0]
	case model.ActionQuit:
		a.shouldQuit = true
	case model.ActionSuspend:
		a.shouldSuspend = true
	case model.ActionResume:
		a.shouldSuspend = false
	case model.ActionClearScreen:
		if err := a.term.Clear(); err != nil {
			return fmt.Errorf("clearing screen: %w", err)
		}
	case model.ActionResize:
		if err := a.term.Resize(action.Width, action.Height); err != nil {
			return fmt.Errorf("resizing terminal: %w", err)
		}
		if err := a.render(); err != nil {
			return err
		}
	case model.ActionRender:
		if err := a.render(); err != nil {
			return err
		}
	}

	for _, c := range a.comps {
		follow, err := components.Update(c, action)
		if err != nil {
			return fmt.Errorf("%s: updating on %s: %w", c.Name(), action, err)
		}
		a.enqueue(follow)
	}
	return nil
}

// render draws every component into its region of a fresh frame. A
// component that fails to draw is reported with an Error action; the others
// still draw.
func (a *App) render() error {
	regions := components.Layout(a.comps, a.screen())
	var failed []model.Action

	err := a.term.Draw(func(f *view.Frame) {
		for i, c := range a.comps {
			d, ok := c.(components.Drawer)
			if !ok {
				continue
			}
			if err := d.Draw(f, regions[i]); err != nil {
				logError(err, "Failed to draw %s", c.Name())
				failed = append(failed, model.Error(fmt.Sprintf("failed to draw %s: %v", c.Name(), err)))
			}
		}
	})
	if err != nil {
		return fmt.Errorf("drawing frame: %w", err)
	}

	for _, action := range failed {
		a.enqueue(action)
	}
	return nil
}
