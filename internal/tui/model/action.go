package model

import (
	"fmt"
	"strconv"
)

// ActionKind tags the variant carried by an Action.
type ActionKind int

const (
	// ActionNone is the zero kind; an Action of this kind means "no action".
	ActionNone ActionKind = iota
	ActionTick
	ActionRender
	ActionResize
	ActionQuit
	ActionSuspend
	ActionResume
	ActionClearScreen
	ActionError
	ActionHelp
	ActionNavigate
	ActionNavigateFirst
	ActionNavigateLast
	ActionCopySelection
	ActionLibraryChanged
	// ActionCommand is the open extension point for component specific
	// commands identified by name.
	ActionCommand
)

// String provides a human-readable representation of the ActionKind.
func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "None"
	case ActionTick:
		return "Tick"
	case ActionRender:
		return "Render"
	case ActionResize:
		return "Resize"
	case ActionQuit:
		return "Quit"
	case ActionSuspend:
		return "Suspend"
	case ActionResume:
		return "Resume"
	case ActionClearScreen:
		return "ClearScreen"
	case ActionError:
		return "Error"
	case ActionHelp:
		return "Help"
	case ActionNavigate:
		return "Navigate"
	case ActionNavigateFirst:
		return "NavigateFirst"
	case ActionNavigateLast:
		return "NavigateLast"
	case ActionCopySelection:
		return "CopySelection"
	case ActionLibraryChanged:
		return "LibraryChanged"
	case ActionCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

// Action is a unit of intent exchanged between the dispatcher and the
// components. It is a comparable value: two actions are equal when their
// kind and payload are equal, so == is structural equality.
//
// Only the payload fields relevant to Kind are set:
//   - Resize: Width, Height
//   - Navigate: Delta
//   - Error: Message
//   - LibraryChanged, Command: Name
type Action struct {
	Kind    ActionKind
	Width   int
	Height  int
	Delta   int
	Message string
	Name    string
}

// NoAction is returned by handlers that do not want anything enqueued.
var NoAction = Action{}

func Tick() Action          { return Action{Kind: ActionTick} }
func Render() Action        { return Action{Kind: ActionRender} }
func Quit() Action          { return Action{Kind: ActionQuit} }
func Suspend() Action       { return Action{Kind: ActionSuspend} }
func Resume() Action        { return Action{Kind: ActionResume} }
func ClearScreen() Action   { return Action{Kind: ActionClearScreen} }
func Help() Action          { return Action{Kind: ActionHelp} }
func NavigateFirst() Action { return Action{Kind: ActionNavigateFirst} }
func NavigateLast() Action  { return Action{Kind: ActionNavigateLast} }
func CopySelection() Action { return Action{Kind: ActionCopySelection} }

// Resize reports a new terminal size in cells.
func Resize(width, height int) Action {
	return Action{Kind: ActionResize, Width: width, Height: height}
}

// Error carries a message that should be surfaced to the user.
func Error(message string) Action {
	return Action{Kind: ActionError, Message: message}
}

// Navigate moves a selection cursor by delta rows.
func Navigate(delta int) Action {
	return Action{Kind: ActionNavigate, Delta: delta}
}

// LibraryChanged signals that the library file at path was modified on disk.
func LibraryChanged(path string) Action {
	return Action{Kind: ActionLibraryChanged, Name: path}
}

// Command builds a named extension action.
func Command(name string) Action {
	return Action{Kind: ActionCommand, Name: name}
}

// IsNone reports whether a is the empty action.
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

// IsHighFrequency reports whether a fires every frame and should be kept
// out of the logs.
func (a Action) IsHighFrequency() bool {
	return a.Kind == ActionTick || a.Kind == ActionRender
}

func (a Action) String() string {
	switch a.Kind {
	case ActionResize:
		return fmt.Sprintf("Resize(%d, %d)", a.Width, a.Height)
	case ActionNavigate:
		if a.Delta >= 0 {
			return "Navigate(+" + strconv.Itoa(a.Delta) + ")"
		}
		return "Navigate(" + strconv.Itoa(a.Delta) + ")"
	case ActionError:
		return fmt.Sprintf("Error(%q)", a.Message)
	case ActionLibraryChanged, ActionCommand:
		return fmt.Sprintf("%s(%q)", a.Kind, a.Name)
	default:
		return a.Kind.String()
	}
}
