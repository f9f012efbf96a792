package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_Equality(t *testing.T) {
	assert.Equal(t, Tick(), Tick())
	assert.True(t, Resize(80, 24) == Resize(80, 24))
	assert.False(t, Resize(80, 24) == Resize(80, 25))
	assert.False(t, Navigate(1) == Navigate(-1))
	assert.False(t, Error("a") == Error("b"))
	assert.False(t, Tick() == Render())
	assert.True(t, NoAction.IsNone())
	assert.False(t, Quit().IsNone())
}

func TestAction_String(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{Tick(), "Tick"},
		{Render(), "Render"},
		{Resize(120, 40), "Resize(120, 40)"},
		{Navigate(1), "Navigate(+1)"},
		{Navigate(-3), "Navigate(-3)"},
		{Error("boom"), `Error("boom")`},
		{LibraryChanged("/tmp/lib.json"), `LibraryChanged("/tmp/lib.json")`},
		{Command("refresh"), `Command("refresh")`},
		{ClearScreen(), "ClearScreen"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.action.String())
		})
	}
}

func TestAction_IsHighFrequency(t *testing.T) {
	assert.True(t, Tick().IsHighFrequency())
	assert.True(t, Render().IsHighFrequency())
	for _, a := range []Action{Quit(), Suspend(), Resume(), Resize(1, 1), Error("x"), Navigate(1)} {
		assert.False(t, a.IsHighFrequency(), a.String())
	}
}

func TestEvent_Action(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected Action
		ok       bool
	}{
		{"tick", Event{Kind: EventTick}, Tick(), true},
		{"render", Event{Kind: EventRender}, Render(), true},
		{"resize", ResizeEvent(100, 30), Resize(100, 30), true},
		{"quit", Event{Kind: EventQuit}, Quit(), true},
		{"key", KeyEvent(NewKey("q")), NoAction, false},
		{"paste", Event{Kind: EventPaste, Text: "hello"}, NoAction, false},
		{"focus", Event{Kind: EventFocusGained}, NoAction, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.Action()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKeySequence_String(t *testing.T) {
	seq := KeySequence{{Code: "d", Mod: ModCtrl}, NewKey("g"), {Code: "down", Mod: ModCtrl | ModShift}}
	assert.Equal(t, "<ctrl-d><g><ctrl-shift-down>", seq.String())
	assert.True(t, seq.Equal(KeySequence{{Code: "d", Mod: ModCtrl}, NewKey("g"), {Code: "down", Mod: ModCtrl | ModShift}}))
	assert.False(t, seq.Equal(seq[:2]))
	assert.Equal(t, "", KeySequence(nil).String())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Home")
	require.NoError(t, err)
	assert.Equal(t, ModeHome, m)

	m, err = ParseMode(" home ")
	require.NoError(t, err)
	assert.Equal(t, ModeHome, m)

	_, err = ParseMode("settings")
	assert.ErrorIs(t, err, ErrUnknownMode)
}
