package terminal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/tui/model"
)

type repaintMsg struct{}

type clearMsg struct{}

// bridge is the tea.Model of a session. It forwards every input message to
// the event channel and displays whatever frame was drawn last.
type bridge struct {
	tui     *Tui
	session <-chan struct{}
}

func (b *bridge) Init() tea.Cmd {
	return nil
}

func (b *bridge) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case clearMsg:
		return b, tea.ClearScreen
	case repaintMsg:
		return b, nil
	}
	if ev, ok := translate(msg); ok {
		b.tui.emit(ev, b.session)
	}
	return b, nil
}

func (b *bridge) View() string {
	return b.tui.view()
}

// translate converts a bubbletea message into an Event.
func translate(msg tea.Msg) (model.Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Paste {
			return model.Event{Kind: model.EventPaste, Text: string(msg.Runes)}, true
		}
		return model.KeyEvent(keyFromMsg(msg)), true
	case tea.WindowSizeMsg:
		return model.ResizeEvent(msg.Width, msg.Height), true
	case tea.MouseMsg:
		return model.Event{Kind: model.EventMouse, Mouse: mouseFromMsg(msg)}, true
	case tea.FocusMsg:
		return model.Event{Kind: model.EventFocusGained}, true
	case tea.BlurMsg:
		return model.Event{Kind: model.EventFocusLost}, true
	}
	return model.Event{}, false
}

var keyNames = map[string]string{
	" ": "space",
}

// keyFromMsg maps bubbletea's key names ("ctrl+d", "shift+tab", "alt+x",
// "pgdown") onto a Key with the same spelling the keymap parser produces.
func keyFromMsg(msg tea.KeyMsg) model.Key {
	var k model.Key
	s := msg.String()
	for {
		switch {
		case len(s) > len("ctrl+") && strings.HasPrefix(s, "ctrl+"):
			k.Mod |= model.ModCtrl
			s = s[len("ctrl+"):]
			continue
		case len(s) > len("alt+") && strings.HasPrefix(s, "alt+"):
			k.Mod |= model.ModAlt
			s = s[len("alt+"):]
			continue
		case len(s) > len("shift+") && strings.HasPrefix(s, "shift+"):
			k.Mod |= model.ModShift
			s = s[len("shift+"):]
			continue
		}
		break
	}
	if name, ok := keyNames[s]; ok {
		s = name
	}
	k.Code = s
	return k
}

func mouseFromMsg(msg tea.MouseMsg) model.Mouse {
	m := model.Mouse{
		X:       msg.X,
		Y:       msg.Y,
		Release: msg.Action == tea.MouseActionRelease,
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.Button = model.MouseLeft
	case tea.MouseButtonMiddle:
		m.Button = model.MouseMiddle
	case tea.MouseButtonRight:
		m.Button = model.MouseRight
	case tea.MouseButtonWheelUp:
		m.Button = model.MouseWheelUp
	case tea.MouseButtonWheelDown:
		m.Button = model.MouseWheelDown
	}
	return m
}
