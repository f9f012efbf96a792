package model

import "strings"

// Modifier is a bit set of keyboard modifiers held with a key.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

const ModNone Modifier = 0

// Has reports whether every bit in o is set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

func (m Modifier) String() string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "-")
}

// Key describes one key press: a key code plus its modifiers. Printable keys
// use the character itself as Code ("q", "Q", "?"); named keys use lower-case
// names ("down", "enter", "esc", "f1", "space"). Key is comparable and can be
// used as a map key.
type Key struct {
	Code string
	Mod  Modifier
}

// NewKey returns a Key without modifiers.
func NewKey(code string) Key {
	return Key{Code: code}
}

// String renders the canonical form, e.g. "<ctrl-d>" or "<down>".
func (k Key) String() string {
	if k.Mod == ModNone {
		return "<" + k.Code + ">"
	}
	return "<" + k.Mod.String() + "-" + k.Code + ">"
}

// KeySequence is an ordered run of key presses.
type KeySequence []Key

// String renders the canonical form of every key, concatenated. Two sequences
// are equal exactly when their canonical strings are equal, which makes the
// result usable as a map key.
func (s KeySequence) String() string {
	var b strings.Builder
	for _, k := range s {
		b.WriteString(k.String())
	}
	return b.String()
}

// Equal reports whether s and o contain the same keys in the same order.
func (s KeySequence) Equal(o KeySequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
