package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name does not match any Mode.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is the UI context that selects the active keybinding set.
type Mode int

const (
	// ModeHome is the library browser and the initial mode.
	ModeHome Mode = iota
)

// String provides a human-readable representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModeHome:
		return "Home"
	default:
		return "Unknown"
	}
}

// ParseMode resolves a configuration mode name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home":
		return ModeHome, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}
