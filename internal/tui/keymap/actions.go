package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"audioshelf/internal/tui/model"
)

// ErrUnknownAction is returned for action names missing from the name table.
var ErrUnknownAction = errors.New("unknown action")

// PageSize is the number of rows the page navigation actions move.
const PageSize = 10

type namedAction struct {
	action      model.Action
	description string
}

// actionNames is the fixed table of action names accepted in keybinding
// configuration. Keys are lower-case.
var actionNames = map[string]namedAction{
	"quit":             {model.Quit(), "quit"},
	"suspend":          {model.Suspend(), "suspend"},
	"resume":           {model.Resume(), "resume"},
	"clearscreen":      {model.ClearScreen(), "redraw screen"},
	"tick":             {model.Tick(), "tick"},
	"render":           {model.Render(), "render"},
	"help":             {model.Help(), "toggle help"},
	"navigatenext":     {model.Navigate(1), "next"},
	"navigateprev":     {model.Navigate(-1), "previous"},
	"navigatepagedown": {model.Navigate(PageSize), "page down"},
	"navigatepageup":   {model.Navigate(-PageSize), "page up"},
	"navigatefirst":    {model.NavigateFirst(), "first"},
	"navigatelast":     {model.NavigateLast(), "last"},
	"copyselection":    {model.CopySelection(), "copy title"},
}

// ParseAction resolves a configuration action name, case-insensitively.
func ParseAction(name string) (model.Action, error) {
	na, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.NoAction, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return na.action, nil
}

// ActionNames lists the accepted action names in sorted order.
func ActionNames() []string {
	names := make([]string, 0, len(actionNames))
	for n := range actionNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Describe returns the short help text for an action.
func Describe(a model.Action) string {
	for _, na := range actionNames {
		if na.action == a {
			return na.description
		}
	}
	return strings.ToLower(a.String())
}
