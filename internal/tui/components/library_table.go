package components

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/table"

	"audioshelf/internal/library"
	"audioshelf/internal/tui/design"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/utils"
	"audioshelf/internal/tui/view"
	"audioshelf/pkg/logging"
)

const (
	minTitleWidth  = 10
	minColumnWidth = 5
	ratingWidth    = 3
	// cellPadding is the horizontal padding bubbles/table puts around
	// every cell.
	cellPadding = 2
)

// LibraryTable lists the audiobooks of the shared library and keeps a
// selection cursor. The library itself is never modified.
type LibraryTable struct {
	library *library.Library
	table   table.Model

	// copy writes the selected title to the clipboard.
	copy func(string) error
}

// NewLibraryTable creates the table with the first book selected.
func NewLibraryTable(lib *library.Library) *LibraryTable {
	if lib == nil {
		lib = library.Empty()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Inherit(design.TableHeaderStyle)
	styles.Selected = design.TableSelectedStyle

	t := &LibraryTable{
		library: lib,
		copy:    clipboard.WriteAll,
	}
	t.table = table.New(
		table.WithColumns(t.columns(0)),
		table.WithRows(rows(lib)),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
	return t
}

func rows(lib *library.Library) []table.Row {
	out := make([]table.Row, 0, lib.Len())
	for _, b := range lib.Audiobooks {
		out = append(out, table.Row{b.DisplayTitle(), b.Artist, b.DisplayGenre(), b.RatingSymbol()})
	}
	return out
}

func (t *LibraryTable) Name() string { return "LibraryTable" }

// Selected is the index of the selected book, -1 when the library is empty.
func (t *LibraryTable) Selected() int {
	if t.library.Len() == 0 {
		return -1
	}
	return t.table.Cursor()
}

func (t *LibraryTable) Init(area view.Rect) error {
	t.layout(area)
	return nil
}

func (t *LibraryTable) HandleKeyEvents(k model.Key) (model.Action, error) {
	if k.Mod != model.ModNone {
		return model.NoAction, nil
	}
	switch k.Code {
	case "pgdown":
		return model.Navigate(keymap.PageSize), nil
	case "pgup":
		return model.Navigate(-keymap.PageSize), nil
	case "home":
		return model.NavigateFirst(), nil
	case "end":
		return model.NavigateLast(), nil
	}
	return model.NoAction, nil
}

func (t *LibraryTable) HandleMouseEvents(m model.Mouse) (model.Action, error) {
	switch m.Button {
	case model.MouseWheelUp:
		return model.Navigate(-1), nil
	case model.MouseWheelDown:
		return model.Navigate(1), nil
	}
	return model.NoAction, nil
}

func (t *LibraryTable) Update(action model.Action) (model.Action, error) {
	n := t.library.Len()
	switch action.Kind {
	case model.ActionNavigate:
		if n > 0 {
			t.table.SetCursor(((t.table.Cursor()+action.Delta)%n + n) % n)
		}
	case model.ActionNavigateFirst:
		if n > 0 {
			t.table.GotoTop()
		}
	case model.ActionNavigateLast:
		if n > 0 {
			t.table.GotoBottom()
		}
	case model.ActionCopySelection:
		return t.copySelection(), nil
	}
	return model.NoAction, nil
}

func (t *LibraryTable) copySelection() model.Action {
	i := t.Selected()
	if i < 0 {
		return model.NoAction
	}
	title := t.library.Audiobooks[i].DisplayTitle()
	if err := t.copy(title); err != nil {
		logging.Error("LibraryTable", err, "Failed to copy title to clipboard")
		return model.Error(fmt.Sprintf("copy to clipboard: %v", err))
	}
	logging.Info("LibraryTable", "Copied %q to clipboard", title)
	return model.NoAction
}

func (t *LibraryTable) Draw(f *view.Frame, area view.Rect) error {
	panel := t.panel(area)
	t.layout(area)
	f.Render(area, panel.WithContent(t.table.View()).Render())
	return nil
}

func (t *LibraryTable) panel(area view.Rect) *Panel {
	return NewPanel(fmt.Sprintf(" Audiobook Library (%d items) ", t.library.Len())).
		WithFooter(design.TextMutedStyle.Render("Next ") + design.KeyStyle.Render("<Down>") +
			design.TextMutedStyle.Render(" Previous ") + design.KeyStyle.Render("<Up>") +
			design.TextMutedStyle.Render(" Quit ") + design.KeyStyle.Render("<q>")).
		WithDimensions(area.Width, area.Height)
}

// layout sizes the table to the inner area of the panel.
func (t *LibraryTable) layout(area view.Rect) {
	width, height := t.panel(area).InnerSize()
	t.table.SetColumns(t.columns(width))
	t.table.SetWidth(width)
	t.table.SetHeight(height)
}

// columns sizes artist and genre to their longest value, fixes the rating
// and gives the rest of width to the title.
func (t *LibraryTable) columns(width int) []table.Column {
	artists := make([]string, 0, t.library.Len())
	genres := make([]string, 0, t.library.Len())
	for _, b := range t.library.Audiobooks {
		artists = append(artists, b.Artist)
		genres = append(genres, b.DisplayGenre())
	}
	artistWidth := max(utils.MaxWidth(artists, minColumnWidth), utils.Width("Author"))
	genreWidth := max(utils.MaxWidth(genres, minColumnWidth), utils.Width("Genre"))
	titleWidth := max(width-artistWidth-genreWidth-ratingWidth-4*cellPadding, minTitleWidth)

	return []table.Column{
		{Title: "Title", Width: titleWidth},
		{Title: "Author", Width: artistWidth},
		{Title: "Genre", Width: genreWidth},
		{Title: "Rtg", Width: ratingWidth},
	}
}
