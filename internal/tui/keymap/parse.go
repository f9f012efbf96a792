package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"audioshelf/internal/tui/model"
)

// ErrInvalidKey is returned for key descriptions that cannot be parsed.
var ErrInvalidKey = errors.New("invalid key")

// keyAliases maps accepted spellings onto the canonical names the terminal
// reports.
var keyAliases = map[string]string{
	"escape":    "esc",
	"return":    "enter",
	"pageup":    "pgup",
	"pagedown":  "pgdown",
	"del":       "delete",
	"ins":       "insert",
	"bs":        "backspace",
	"lt":        "<",
	"gt":        ">",
	"minus":     "-",
	"spacebar":  "space",
	"backtab":   "shift-tab",
	"arrowup":   "up",
	"arrowdown": "down",
}

var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"enter": true, "esc": true, "tab": true, "backspace": true,
	"delete": true, "insert": true, "home": true, "end": true,
	"pgup": true, "pgdown": true, "space": true,
}

// ParseKeySequence parses a configuration key sequence such as "<q>",
// "<Ctrl-d>" or "<g><g>". A string without angle brackets is parsed as a
// single key.
func ParseKeySequence(raw string) (model.KeySequence, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidKey)
	}
	if !strings.HasPrefix(s, "<") {
		k, err := ParseKey(s)
		if err != nil {
			return nil, err
		}
		return model.KeySequence{k}, nil
	}

	var seq model.KeySequence
	for len(s) > 0 {
		if s[0] != '<' || len(s) < 3 {
			return nil, fmt.Errorf("%w: malformed sequence %q", ErrInvalidKey, raw)
		}
		// The body holds at least one byte, so "<>>" parses as ">".
		end := strings.IndexByte(s[2:], '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated key in %q", ErrInvalidKey, raw)
		}
		end += 2
		k, err := ParseKey(s[1:end])
		if err != nil {
			return nil, err
		}
		seq = append(seq, k)
		s = s[end+1:]
	}
	return seq, nil
}

// ParseKey parses one key description: optional "ctrl-", "alt-" and
// "shift-" prefixes followed by a character or a key name.
func ParseKey(raw string) (model.Key, error) {
	var k model.Key
	rest := raw
	for {
		lower := strings.ToLower(rest)
		switch {
		case len(rest) > len("ctrl-") && strings.HasPrefix(lower, "ctrl-"):
			k.Mod |= model.ModCtrl
			rest = rest[len("ctrl-"):]
			continue
		case len(rest) > len("alt-") && strings.HasPrefix(lower, "alt-"):
			k.Mod |= model.ModAlt
			rest = rest[len("alt-"):]
			continue
		case len(rest) > len("shift-") && strings.HasPrefix(lower, "shift-"):
			k.Mod |= model.ModShift
			rest = rest[len("shift-"):]
			continue
		}
		break
	}

	if rest == "" {
		return model.Key{}, fmt.Errorf("%w: %q", ErrInvalidKey, raw)
	}

	if utf8.RuneCountInString(rest) == 1 {
		r, _ := utf8.DecodeRuneInString(rest)
		switch {
		case k.Mod.Has(model.ModCtrl) && unicode.IsLetter(r):
			// Terminals cannot tell ctrl+D from ctrl+d.
			r = unicode.ToLower(r)
		case k.Mod.Has(model.ModShift) && unicode.IsLetter(r):
			// The terminal reports shifted letters as the upper-case rune.
			k.Mod &^= model.ModShift
			r = unicode.ToUpper(r)
		}
		if r == ' ' {
			k.Code = "space"
		} else {
			k.Code = string(r)
		}
		return k, nil
	}

	name := strings.ToLower(rest)
	if alias, ok := keyAliases[name]; ok {
		name = alias
		if strings.HasPrefix(name, "shift-") {
			k.Mod |= model.ModShift
			name = strings.TrimPrefix(name, "shift-")
		}
	}
	if utf8.RuneCountInString(name) == 1 || namedKeys[name] || isFunctionKey(name) {
		k.Code = name
		return k, nil
	}
	return model.Key{}, fmt.Errorf("%w: unknown key name %q", ErrInvalidKey, rest)
}

func isFunctionKey(name string) bool {
	if len(name) < 2 || len(name) > 3 || name[0] != 'f' {
		return false
	}
	n := 0
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
		n = n*10 + int(c-'0')
	}
	return n >= 1 && n <= 20
}

// DisplaySequence renders a sequence for help text, e.g. "ctrl+d" or "g g".
func DisplaySequence(seq model.KeySequence) string {
	parts := make([]string, len(seq))
	for i, k := range seq {
		if k.Mod == model.ModNone {
			parts[i] = k.Code
			continue
		}
		parts[i] = strings.ReplaceAll(k.Mod.String(), "-", "+") + "+" + k.Code
	}
	return strings.Join(parts, " ")
}
