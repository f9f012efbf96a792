package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audioshelf/internal/tui/model"
)

func TestParseKeySequence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected model.KeySequence
	}{
		{"single char", "<q>", model.KeySequence{model.NewKey("q")}},
		{"bare char", "q", model.KeySequence{model.NewKey("q")}},
		{"upper case kept", "<Q>", model.KeySequence{model.NewKey("Q")}},
		{"ctrl", "<Ctrl-d>", model.KeySequence{{Code: "d", Mod: model.ModCtrl}}},
		{"ctrl upper folds", "<Ctrl-D>", model.KeySequence{{Code: "d", Mod: model.ModCtrl}}},
		{"shift letter", "<Shift-g>", model.KeySequence{model.NewKey("G")}},
		{"named key", "<Down>", model.KeySequence{model.NewKey("down")}},
		{"alias", "<Escape>", model.KeySequence{model.NewKey("esc")}},
		{"backtab", "<BackTab>", model.KeySequence{{Code: "tab", Mod: model.ModShift}}},
		{"multi key", "<g><g>", model.KeySequence{model.NewKey("g"), model.NewKey("g")}},
		{"space", "<Space>", model.KeySequence{model.NewKey("space")}},
		{"literal space", "< >", model.KeySequence{model.NewKey("space")}},
		{"closing bracket", "<>>", model.KeySequence{model.NewKey(">")}},
		{"dash", "<->", model.KeySequence{model.NewKey("-")}},
		{"ctrl minus", "<ctrl-minus>", model.KeySequence{{Code: "-", Mod: model.ModCtrl}}},
		{"function key", "<F12>", model.KeySequence{model.NewKey("f12")}},
		{"combined mods", "<ctrl-alt-up>", model.KeySequence{{Code: "up", Mod: model.ModCtrl | model.ModAlt}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := ParseKeySequence(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, seq)
		})
	}
}

func TestParseKeySequence_Invalid(t *testing.T) {
	for _, input := range []string{"", "<>", "<q", "<ctrl->", "<bogus>", "<f99>", "<q>x"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseKeySequence(input)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction("Quit")
	require.NoError(t, err)
	assert.Equal(t, model.Quit(), a)

	a, err = ParseAction("navigateNext")
	require.NoError(t, err)
	assert.Equal(t, model.Navigate(1), a)

	a, err = ParseAction("NavigatePageUp")
	require.NoError(t, err)
	assert.Equal(t, model.Navigate(-PageSize), a)

	_, err = ParseAction("Launch")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestLoad(t *testing.T) {
	table, err := Load(map[string]map[string]string{
		"Home": {
			"<q>":      "Quit",
			"<Ctrl-c>": "Quit",
			"<g><g>":   "NavigateFirst",
			"<Down>":   "NavigateNext",
		},
	})
	require.NoError(t, err)

	a, ok := table.Resolve(model.ModeHome, model.KeySequence{{Code: "c", Mod: model.ModCtrl}})
	assert.True(t, ok)
	assert.Equal(t, model.Quit(), a)

	a, ok = table.Resolve(model.ModeHome, model.KeySequence{model.NewKey("g"), model.NewKey("g")})
	assert.True(t, ok)
	assert.Equal(t, model.NavigateFirst(), a)

	_, ok = table.Resolve(model.ModeHome, model.KeySequence{model.NewKey("g")})
	assert.False(t, ok, "a prefix of a bound sequence is not a match")

	assert.Equal(t, 2, table.MaxSequenceLength(model.ModeHome))
	assert.Equal(t, []model.Mode{model.ModeHome}, table.Modes())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]map[string]string
		target error
	}{
		{"unknown mode", map[string]map[string]string{"Nowhere": {"<q>": "Quit"}}, model.ErrUnknownMode},
		{"bad key", map[string]map[string]string{"Home": {"<nokey>": "Quit"}}, ErrInvalidKey},
		{"bad action", map[string]map[string]string{"Home": {"<q>": "Explode"}}, ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load(tt.raw)
			assert.Nil(t, table)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestTable_ResolveIsExactAndModeScoped(t *testing.T) {
	down := model.NewKey("down")
	table := NewTable(Binding{Mode: model.ModeHome, Sequence: model.KeySequence{down}, Action: model.Navigate(1)})

	_, ok := table.Resolve(model.Mode(99), model.KeySequence{down})
	assert.False(t, ok)

	_, ok = table.Resolve(model.ModeHome, model.KeySequence{down, down})
	assert.False(t, ok)

	_, ok = table.Resolve(model.ModeHome, nil)
	assert.False(t, ok)

	var nilTable *Table
	_, ok = nilTable.Resolve(model.ModeHome, model.KeySequence{down})
	assert.False(t, ok)
}

func TestTable_NewTableCopiesSequences(t *testing.T) {
	seq := model.KeySequence{model.NewKey("x")}
	table := NewTable(Binding{Mode: model.ModeHome, Sequence: seq, Action: model.Quit()})
	seq[0] = model.NewKey("y")

	_, ok := table.Resolve(model.ModeHome, model.KeySequence{model.NewKey("x")})
	assert.True(t, ok)
}

func TestTable_HelpBindings(t *testing.T) {
	table, err := Load(map[string]map[string]string{
		"Home": {
			"<q>":      "Quit",
			"<Ctrl-c>": "Quit",
			"<Down>":   "NavigateNext",
		},
	})
	require.NoError(t, err)

	help := table.HelpBindings(model.ModeHome)
	require.Len(t, help, 2)

	assert.Equal(t, "next", help[0].Help().Desc)
	assert.Equal(t, "down", help[0].Help().Key)

	assert.Equal(t, "quit", help[1].Help().Desc)
	assert.Equal(t, "ctrl+c/q", help[1].Help().Key)
	assert.ElementsMatch(t, []string{"ctrl+c", "q"}, help[1].Keys())
}

func TestDisplaySequence(t *testing.T) {
	assert.Equal(t, "g g", DisplaySequence(model.KeySequence{model.NewKey("g"), model.NewKey("g")}))
	assert.Equal(t, "ctrl+alt+x", DisplaySequence(model.KeySequence{{Code: "x", Mod: model.ModCtrl | model.ModAlt}}))
}
