// Package components defines the capability interfaces of UI components
// and the components audioshelf ships with.
//
// Every component implements Component. All other capabilities are optional
// and discovered by type assertion; a component that does not implement one
// gets the no-op behavior. The dispatcher calls components strictly in list
// order, which is also their drawing order and their order of precedence for
// input.
//
// A component must never return, from Update, the action it was just given
// unconditionally: follow-up actions are queued behind the current one and
// such a component would keep the queue from draining.
package components

import (
	"audioshelf/internal/config"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
)

// Component is the one capability every component has.
type Component interface {
	Name() string
}

// ActionSender queues actions from outside the dispatcher's update calls,
// for example from a background goroutine. Send fails once the dispatcher
// has stopped.
type ActionSender interface {
	Send(model.Action) error
}

// ActionHandlerRegistrar receives the action sender before Init.
type ActionHandlerRegistrar interface {
	RegisterActionHandler(sender ActionSender) error
}

// ConfigRegistrar receives the resolved configuration before Init.
type ConfigRegistrar interface {
	RegisterConfigHandler(cfg config.Config) error
}

// Initializer is called once before the loop starts with the component's
// region. An error aborts startup.
type Initializer interface {
	Init(area view.Rect) error
}

// EventHandler receives every raw event that is neither a key nor a mouse
// event, and keys or mouse events when the component has no dedicated
// handler for them.
type EventHandler interface {
	HandleEvents(ev model.Event) (model.Action, error)
}

// KeyEventHandler receives key events.
type KeyEventHandler interface {
	HandleKeyEvents(key model.Key) (model.Action, error)
}

// MouseEventHandler receives mouse events.
type MouseEventHandler interface {
	HandleMouseEvents(mouse model.Mouse) (model.Action, error)
}

// Updater is invoked once for every processed action.
type Updater interface {
	Update(action model.Action) (model.Action, error)
}

// Drawer renders the component into its region of the frame.
type Drawer interface {
	Draw(f *view.Frame, area view.Rect) error
}

// Sizer reports the number of rows a drawing component wants. Drawers
// without it share the rows left over.
type Sizer interface {
	PreferredHeight() int
}

// Closer releases resources after the loop has ended.
type Closer interface {
	Close() error
}

// HandleEvents routes ev to the matching handler of c.
func HandleEvents(c Component, ev model.Event) (model.Action, error) {
	switch ev.Kind {
	case model.EventKey:
		if h, ok := c.(KeyEventHandler); ok {
			return h.HandleKeyEvents(ev.Key)
		}
	case model.EventMouse:
		if h, ok := c.(MouseEventHandler); ok {
			return h.HandleMouseEvents(ev.Mouse)
		}
	}
	if h, ok := c.(EventHandler); ok {
		return h.HandleEvents(ev)
	}
	return model.NoAction, nil
}

// Update passes action to c if it is an Updater.
func Update(c Component, action model.Action) (model.Action, error) {
	if u, ok := c.(Updater); ok {
		return u.Update(action)
	}
	return model.NoAction, nil
}

// Layout assigns each component its region of area. Drawing components are
// stacked top to bottom in list order; the rest get an empty region.
func Layout(comps []Component, area view.Rect) []view.Rect {
	var (
		heights []int
		drawers []int
	)
	for i, c := range comps {
		if _, ok := c.(Drawer); !ok {
			continue
		}
		h := 0
		if s, ok := c.(Sizer); ok {
			h = s.PreferredHeight()
		}
		heights = append(heights, h)
		drawers = append(drawers, i)
	}

	regions := make([]view.Rect, len(comps))
	for j, r := range view.StackVertical(area, heights) {
		regions[drawers[j]] = r
	}
	return regions
}
