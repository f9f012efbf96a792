package model

import "fmt"

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventTick EventKind = iota
	EventRender
	EventKey
	EventResize
	EventMouse
	EventQuit
	EventFocusGained
	EventFocusLost
	EventPaste
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "Tick"
	case EventRender:
		return "Render"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	case EventMouse:
		return "Mouse"
	case EventQuit:
		return "Quit"
	case EventFocusGained:
		return "FocusGained"
	case EventFocusLost:
		return "FocusLost"
	case EventPaste:
		return "Paste"
	default:
		return "Unknown"
	}
}

// MouseButton identifies the button or wheel direction of a mouse event.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Mouse is a mouse event in cell coordinates.
type Mouse struct {
	X, Y    int
	Button  MouseButton
	Release bool
}

// Event is a low-level occurrence read from the terminal or one of the
// timers. Events are only produced by the terminal event source.
type Event struct {
	Kind   EventKind
	Key    Key
	Width  int
	Height int
	Mouse  Mouse
	Text   string
}

// Action translates Tick, Render, Resize and Quit events into the matching
// action. The second result is false for every other kind.
func (e Event) Action() (Action, bool) {
	switch e.Kind {
	case EventTick:
		return Tick(), true
	case EventRender:
		return Render(), true
	case EventResize:
		return Resize(e.Width, e.Height), true
	case EventQuit:
		return Quit(), true
	default:
		return NoAction, false
	}
}

func (e Event) String() string {
	switch e.Kind {
	case EventKey:
		return "Key" + e.Key.String()
	case EventResize:
		return fmt.Sprintf("Resize(%d, %d)", e.Width, e.Height)
	case EventMouse:
		return fmt.Sprintf("Mouse(%d, %d)", e.Mouse.X, e.Mouse.Y)
	case EventPaste:
		return fmt.Sprintf("Paste(%q)", e.Text)
	default:
		return e.Kind.String()
	}
}

// KeyEvent builds a key press event.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// ResizeEvent builds a terminal resize event.
func ResizeEvent(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}
