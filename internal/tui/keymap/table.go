// Package keymap resolves key sequences to actions.
//
// A Table maps a Mode to a set of key sequences, each bound to one action.
// Lookups are exact: a sequence either equals a bound sequence or it does
// not, there is no prefix matching. The dispatcher asks for the single key
// first and only falls back to its pending multi-key sequence when the
// single key is unbound, so a bound key always pre-empts any longer sequence
// starting with it.
//
// Tables are built once at startup from the configuration surface
//
//	keybindings:
//	  Home:
//	    "<q>": Quit
//	    "<g><g>": NavigateFirst
//
// and are read-only afterwards, so they may be shared without locking.
package keymap

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/key"

	"audioshelf/internal/tui/model"
)

// Binding is one sequence bound to an action under a mode.
type Binding struct {
	Mode     model.Mode
	Sequence model.KeySequence
	Action   model.Action
}

// Table is an immutable mode -> key sequence -> action lookup.
type Table struct {
	modes map[model.Mode]map[string]Binding
}

// NewTable builds a table from explicit bindings. A later binding for the
// same mode and sequence replaces an earlier one.
func NewTable(bindings ...Binding) *Table {
	t := &Table{modes: make(map[model.Mode]map[string]Binding)}
	for _, b := range bindings {
		m, ok := t.modes[b.Mode]
		if !ok {
			m = make(map[string]Binding)
			t.modes[b.Mode] = m
		}
		seq := append(model.KeySequence(nil), b.Sequence...)
		b.Sequence = seq
		m[seq.String()] = b
	}
	return t
}

// Load builds a table from the configuration form
// mode name -> key sequence -> action name. Any malformed entry fails the
// whole load.
func Load(raw map[string]map[string]string) (*Table, error) {
	var bindings []Binding
	for modeName, entries := range raw {
		mode, err := model.ParseMode(modeName)
		if err != nil {
			return nil, fmt.Errorf("keybindings: %w", err)
		}
		for seqText, actionName := range entries {
			seq, err := ParseKeySequence(seqText)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s[%q]: %w", modeName, seqText, err)
			}
			action, err := ParseAction(actionName)
			if err != nil {
				return nil, fmt.Errorf("keybindings.%s[%q]: %w", modeName, seqText, err)
			}
			bindings = append(bindings, Binding{Mode: mode, Sequence: seq, Action: action})
		}
	}
	return NewTable(bindings...), nil
}

// Resolve returns the action bound to exactly seq under mode.
func (t *Table) Resolve(mode model.Mode, seq model.KeySequence) (model.Action, bool) {
	if t == nil || len(seq) == 0 {
		return model.NoAction, false
	}
	b, ok := t.modes[mode][seq.String()]
	if !ok {
		return model.NoAction, false
	}
	return b.Action, true
}

// Bindings returns the bindings of mode ordered by their canonical sequence.
func (t *Table) Bindings(mode model.Mode) []Binding {
	if t == nil {
		return nil
	}
	out := make([]Binding, 0, len(t.modes[mode]))
	for _, b := range t.modes[mode] {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Sequence.String() < out[j].Sequence.String()
	})
	return out
}

// Modes returns every mode that has at least one binding.
func (t *Table) Modes() []model.Mode {
	if t == nil {
		return nil
	}
	out := make([]model.Mode, 0, len(t.modes))
	for m := range t.modes {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MaxSequenceLength is the length of the longest bound sequence in mode.
func (t *Table) MaxSequenceLength(mode model.Mode) int {
	n := 0
	if t == nil {
		return n
	}
	for _, b := range t.modes[mode] {
		if len(b.Sequence) > n {
			n = len(b.Sequence)
		}
	}
	return n
}

// HelpBindings groups the bindings of mode by action and returns one
// key.Binding per action, suitable for the bubbles help model.
func (t *Table) HelpBindings(mode model.Mode) []key.Binding {
	var (
		order []model.Action
		keys  = make(map[model.Action][]string)
	)
	for _, b := range t.Bindings(mode) {
		if _, seen := keys[b.Action]; !seen {
			order = append(order, b.Action)
		}
		keys[b.Action] = append(keys[b.Action], DisplaySequence(b.Sequence))
	}
	sort.SliceStable(order, func(i, j int) bool {
		return Describe(order[i]) < Describe(order[j])
	})

	out := make([]key.Binding, 0, len(order))
	for _, a := range order {
		ks := keys[a]
		help := ks[0]
		for _, k := range ks[1:] {
			help += "/" + k
		}
		out = append(out, key.NewBinding(
			key.WithKeys(ks...),
			key.WithHelp(help, Describe(a)),
		))
	}
	return out
}
