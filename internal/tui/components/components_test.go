package components

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audioshelf/internal/config"
	"audioshelf/internal/library"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
	"audioshelf/internal/watch"
	"audioshelf/pkg/logging"
)

type keyOnly struct{ got []model.Key }

func (k *keyOnly) Name() string { return "keyOnly" }
func (k *keyOnly) HandleKeyEvents(key model.Key) (model.Action, error) {
	k.got = append(k.got, key)
	return model.Quit(), nil
}

type eventsOnly struct{ got []model.Event }

func (e *eventsOnly) Name() string { return "eventsOnly" }
func (e *eventsOnly) HandleEvents(ev model.Event) (model.Action, error) {
	e.got = append(e.got, ev)
	return model.NoAction, nil
}

type sized struct{ height int }

func (s sized) Name() string                      { return "sized" }
func (s sized) Draw(*view.Frame, view.Rect) error { return nil }
func (s sized) PreferredHeight() int              { return s.height }

type flexible struct{}

func (flexible) Name() string                      { return "flexible" }
func (flexible) Draw(*view.Frame, view.Rect) error { return nil }

type invisible struct{}

func (invisible) Name() string { return "invisible" }

func TestHandleEvents_Routing(t *testing.T) {
	k := &keyOnly{}
	action, err := HandleEvents(k, model.KeyEvent(model.NewKey("x")))
	require.NoError(t, err)
	assert.Equal(t, model.Quit(), action)
	assert.Equal(t, []model.Key{model.NewKey("x")}, k.got)

	action, err = HandleEvents(k, model.Event{Kind: model.EventTick})
	require.NoError(t, err)
	assert.True(t, action.IsNone(), "no generic handler means no action")

	e := &eventsOnly{}
	_, err = HandleEvents(e, model.KeyEvent(model.NewKey("x")))
	require.NoError(t, err)
	_, err = HandleEvents(e, model.Event{Kind: model.EventMouse})
	require.NoError(t, err)
	assert.Len(t, e.got, 2, "keys and mouse fall back to HandleEvents")

	action, err = Update(invisible{}, model.Tick())
	require.NoError(t, err)
	assert.True(t, action.IsNone())
}

func TestLayout(t *testing.T) {
	comps := []Component{sized{height: 4}, invisible{}, flexible{}}
	regions := Layout(comps, view.NewRect(0, 0, 80, 24))

	require.Len(t, regions, 3)
	assert.Equal(t, view.NewRect(0, 0, 80, 4), regions[0])
	assert.True(t, regions[1].Empty())
	assert.Equal(t, view.NewRect(0, 4, 80, 20), regions[2])
}

func newTable(t *testing.T, n int) *LibraryTable {
	t.Helper()
	lib := &library.Library{}
	for i := 0; i < n; i++ {
		title := "Book " + string(rune('A'+i))
		lib.Audiobooks = append(lib.Audiobooks, library.Audiobook{ID: int64(i), Title: &title, Artist: "Author"})
	}
	table := NewLibraryTable(lib)
	require.NoError(t, table.Init(view.NewRect(0, 0, 80, 20)))
	return table
}

func TestLibraryTable_NavigateWraps(t *testing.T) {
	table := newTable(t, 3)
	assert.Equal(t, 0, table.Selected())

	tests := []struct {
		action   model.Action
		expected int
	}{
		{model.Navigate(1), 1},
		{model.Navigate(1), 2},
		{model.Navigate(1), 0},
		{model.Navigate(-1), 2},
		{model.Navigate(keymap.PageSize), 0},
		{model.NavigateLast(), 2},
		{model.NavigateFirst(), 0},
		{model.Tick(), 0},
	}
	for _, tt := range tests {
		follow, err := table.Update(tt.action)
		require.NoError(t, err)
		assert.True(t, follow.IsNone())
		assert.Equal(t, tt.expected, table.Selected(), "after %s", tt.action)
	}
}

func TestLibraryTable_EmptyLibrary(t *testing.T) {
	table := newTable(t, 0)
	assert.Equal(t, -1, table.Selected())

	for _, a := range []model.Action{model.Navigate(1), model.NavigateLast(), model.NavigateFirst(), model.CopySelection()} {
		follow, err := table.Update(a)
		require.NoError(t, err)
		assert.True(t, follow.IsNone())
	}
	assert.Equal(t, -1, table.Selected())
}

func TestLibraryTable_KeyAndMouseEvents(t *testing.T) {
	table := newTable(t, 3)

	tests := []struct {
		name     string
		ev       model.Event
		expected model.Action
	}{
		{"page down", model.KeyEvent(model.NewKey("pgdown")), model.Navigate(keymap.PageSize)},
		{"page up", model.KeyEvent(model.NewKey("pgup")), model.Navigate(-keymap.PageSize)},
		{"home", model.KeyEvent(model.NewKey("home")), model.NavigateFirst()},
		{"end", model.KeyEvent(model.NewKey("end")), model.NavigateLast()},
		{"bound elsewhere", model.KeyEvent(model.NewKey("down")), model.NoAction},
		{"modified", model.KeyEvent(model.Key{Code: "end", Mod: model.ModCtrl}), model.NoAction},
		{"wheel down", model.Event{Kind: model.EventMouse, Mouse: model.Mouse{Button: model.MouseWheelDown}}, model.Navigate(1)},
		{"wheel up", model.Event{Kind: model.EventMouse, Mouse: model.Mouse{Button: model.MouseWheelUp}}, model.Navigate(-1)},
		{"click", model.Event{Kind: model.EventMouse, Mouse: model.Mouse{Button: model.MouseLeft}}, model.NoAction},
		{"tick", model.Event{Kind: model.EventTick}, model.NoAction},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := HandleEvents(table, tt.ev)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, action)
		})
	}
	assert.Equal(t, 0, table.Selected(), "raw events never move the cursor")
}

func TestLibraryTable_CopySelection(t *testing.T) {
	table := newTable(t, 2)
	var copied string
	table.copy = func(s string) error {
		copied = s
		return nil
	}

	_, err := table.Update(model.Navigate(1))
	require.NoError(t, err)
	follow, err := table.Update(model.CopySelection())
	require.NoError(t, err)
	assert.True(t, follow.IsNone())
	assert.Equal(t, "Book B", copied)

	table.copy = func(string) error { return errors.New("no clipboard") }
	follow, err = table.Update(model.CopySelection())
	require.NoError(t, err)
	assert.Equal(t, model.Error("copy to clipboard: no clipboard"), follow)
}

func TestLibraryTable_Draw(t *testing.T) {
	table := newTable(t, 2)
	f := view.NewFrame(60, 10)
	require.NoError(t, table.Draw(f, f.Area()))

	out := f.String()
	assert.Contains(t, out, "Audiobook Library (2 items)")
	assert.Contains(t, out, "Book A")
	assert.Contains(t, out, "Author")
	assert.Len(t, strings.Split(out, "\n"), 10)
}

func TestStatus_UpdateAndDraw(t *testing.T) {
	keys, err := keymap.Load(config.GetDefaultConfig().Keybindings)
	require.NoError(t, err)

	logs := make(chan logging.LogEntry, 4)
	status := NewStatus(keys, logs)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	status.now = func() time.Time { return clock }
	require.NoError(t, status.RegisterConfigHandler(config.GetDefaultConfig()))
	require.NoError(t, status.Init(view.Rect{}))

	for i := 0; i < 10; i++ {
		_, err := status.Update(model.Render())
		require.NoError(t, err)
	}
	logs <- logging.LogEntry{Timestamp: clock, Level: logging.LevelInfo, Subsystem: "Test", Message: "hello from the log"}
	clock = clock.Add(2 * time.Second)
	for i := 0; i < 4; i++ {
		_, err := status.Update(model.Tick())
		require.NoError(t, err)
	}
	assert.Equal(t, 0.5, status.ticksPerSec, "first tick closes the window")
	assert.Equal(t, 5.0, status.framesPerSec)

	_, err = status.Update(model.Error("draw failed"))
	require.NoError(t, err)
	_, err = status.Update(model.Help())
	require.NoError(t, err)
	assert.True(t, status.showHelp)

	f := view.NewFrame(200, status.PreferredHeight())
	require.NoError(t, status.Draw(f, f.Area()))
	out := f.String()
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "Error: draw failed")
	assert.Contains(t, out, "hello from the log")
	assert.Contains(t, out, "quit")
}

func TestStatus_TruncatesLongLines(t *testing.T) {
	status := NewStatus(keymap.NewTable(), nil)
	_, err := status.Update(model.Error(strings.Repeat("x", 100) + "TAIL"))
	require.NoError(t, err)

	f := view.NewFrame(30, status.PreferredHeight())
	require.NoError(t, status.Draw(f, f.Area()))
	out := f.String()
	assert.Contains(t, out, "Error: xxx")
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, "TAIL")
}

func TestStatus_LibraryChangedNotice(t *testing.T) {
	status := NewStatus(keymap.NewTable(), nil)
	status.now = func() time.Time { return time.Date(2026, 1, 1, 10, 7, 3, 0, time.UTC) }

	_, err := status.Update(model.LibraryChanged("/books/library.json"))
	require.NoError(t, err)
	assert.Equal(t, "library.json changed on disk at 10:07:03, restart to reload", status.notice)
}

func TestStatus_RefreshesWithoutTicks(t *testing.T) {
	logs := make(chan logging.LogEntry, 4)
	status := NewStatus(keymap.NewTable(), logs)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	status.now = func() time.Time { return clock }
	require.NoError(t, status.Init(view.Rect{}))

	logs <- logging.LogEntry{Timestamp: clock, Level: logging.LevelWarn, Subsystem: "Test", Message: "render only"}
	for i := 0; i < 3; i++ {
		_, err := status.Update(model.Render())
		require.NoError(t, err)
	}
	require.Len(t, status.recent, 1)
	assert.Equal(t, "render only", status.recent[0].Message)

	clock = clock.Add(time.Second)
	_, err := status.Update(model.Render())
	require.NoError(t, err)
	assert.Equal(t, 4.0, status.framesPerSec)
	assert.Equal(t, 0.0, status.ticksPerSec)
}

type recordingSender struct {
	mu   sync.Mutex
	sent []model.Action
}

func (r *recordingSender) Send(a model.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, a)
	return nil
}

func (r *recordingSender) actions() []model.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Action(nil), r.sent...)
}

func TestLibraryWatcher_SendsLibraryChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Audiobooks": []}`), 0644))

	sender := &recordingSender{}
	w := NewLibraryWatcher(path)
	w.debounce = 10 * time.Millisecond
	require.NoError(t, w.RegisterActionHandler(sender))
	require.NoError(t, w.Init(view.Rect{}))
	defer w.Close()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`{"Audiobooks": [{}]}`), 0644))

	assert.Eventually(t, func() bool {
		return len(sender.actions()) > 0
	}, 3*time.Second, 10*time.Millisecond)
	assert.Equal(t, model.LibraryChanged(path), sender.actions()[0])

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}

func TestLibraryWatcher_ReleasesWatcherWhenStartFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Audiobooks": []}`), 0644))

	watcher, err := watch.New(10 * time.Millisecond)
	require.NoError(t, err)
	require.NoError(t, watcher.Start())

	w := NewLibraryWatcher(path)
	require.NoError(t, w.RegisterActionHandler(&recordingSender{}))
	assert.Error(t, w.start(watcher), "a started watcher cannot start again")
	assert.Nil(t, w.watcher)

	select {
	case _, ok := <-watcher.FileChannel():
		assert.False(t, ok, "the watcher is stopped")
	case <-time.After(3 * time.Second):
		t.Fatal("watcher was not stopped")
	}
	assert.NoError(t, w.Close())
}

func TestLibraryWatcher_Disabled(t *testing.T) {
	w := NewLibraryWatcher("")
	require.NoError(t, w.Init(view.Rect{}))
	assert.NoError(t, w.Close())

	w = NewLibraryWatcher("/does/not/matter")
	assert.Error(t, w.Init(view.Rect{}), "needs an action sender")
}
