package components

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"audioshelf/internal/config"
	"audioshelf/internal/tui/design"
	"audioshelf/internal/tui/keymap"
	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/utils"
	"audioshelf/internal/tui/view"
	"audioshelf/pkg/logging"
)

// statusLogLines is the number of recent log lines shown.
const statusLogLines = 3

// Status is the diagnostic strip: mode, measured tick and frame rates, the
// last error, recent log lines and the key help.
type Status struct {
	keys *keymap.Table
	logs <-chan logging.LogEntry
	help help.Model
	now  func() time.Time

	mode     model.Mode
	showHelp bool

	configuredTicks  float64
	configuredFrames float64

	windowStart  time.Time
	ticks        int
	frames       int
	ticksPerSec  float64
	framesPerSec float64

	lastError string
	notice    string
	recent    []logging.LogEntry
}

// NewStatus creates the status component. logs may be nil when log lines
// should not be shown. Rates and log lines refresh on both Tick and Render,
// so either timer alone keeps the strip current.
func NewStatus(keys *keymap.Table, logs <-chan logging.LogEntry) *Status {
	h := help.New()
	h.ShortSeparator = "  "
	return &Status{
		keys: keys,
		logs: logs,
		help: h,
		now:  time.Now,
		mode: model.ModeHome,
	}
}

func (s *Status) Name() string { return "Status" }

// PreferredHeight: border, the status line, the error line, the log lines
// and the help line.
func (s *Status) PreferredHeight() int {
	return design.BorderRows + 2 + statusLogLines + 1
}

func (s *Status) RegisterConfigHandler(cfg config.Config) error {
	s.configuredTicks = cfg.TickRate
	s.configuredFrames = cfg.FrameRate
	return nil
}

func (s *Status) Init(view.Rect) error {
	s.windowStart = s.now()
	return nil
}

func (s *Status) Update(action model.Action) (model.Action, error) {
	switch action.Kind {
	case model.ActionTick:
		s.ticks++
		s.measure()
		s.drainLogs()
	case model.ActionRender:
		s.frames++
		s.measure()
		s.drainLogs()
	case model.ActionError:
		s.lastError = action.Message
	case model.ActionLibraryChanged:
		s.notice = fmt.Sprintf("%s changed on disk at %s, restart to reload",
			filepath.Base(action.Name), s.now().Format("15:04:05"))
	case model.ActionHelp:
		s.showHelp = !s.showHelp
	}
	return model.NoAction, nil
}

// measure turns the counters into per second rates once a second.
func (s *Status) measure() {
	now := s.now()
	elapsed := now.Sub(s.windowStart)
	if elapsed < time.Second {
		return
	}
	s.ticksPerSec = float64(s.ticks) / elapsed.Seconds()
	s.framesPerSec = float64(s.frames) / elapsed.Seconds()
	s.ticks, s.frames = 0, 0
	s.windowStart = now
}

func (s *Status) drainLogs() {
	for s.logs != nil {
		select {
		case entry, ok := <-s.logs:
			if !ok {
				s.logs = nil
				return
			}
			s.recent = append(s.recent, entry)
			if len(s.recent) > statusLogLines {
				s.recent = s.recent[len(s.recent)-statusLogLines:]
			}
		default:
			return
		}
	}
}

func (s *Status) Draw(f *view.Frame, area view.Rect) error {
	panel := NewPanel("").WithDimensions(area.Width, area.Height)
	if s.lastError != "" {
		panel.WithType(PanelTypeError)
	}
	width, _ := panel.InnerSize()

	lines := []string{s.statusLine()}
	if s.lastError != "" {
		lines = append(lines, design.TextErrorStyle.Render(utils.TruncateString("Error: "+s.lastError, width)))
	} else {
		lines = append(lines, design.TextWarningStyle.Render(utils.TruncateString(s.notice, width)))
	}
	for i := 0; i < statusLogLines; i++ {
		if i < len(s.recent) {
			entry := s.recent[i]
			lines = append(lines, logStyle(entry.Level).Render(utils.TruncateString(entry.String(), width)))
		} else {
			lines = append(lines, "")
		}
	}
	lines = append(lines, s.helpLine(width))

	f.Render(area, panel.WithContent(strings.Join(lines, "\n")).Render())
	return nil
}

func (s *Status) statusLine() string {
	parts := []string{
		design.KeyStyle.Render(s.mode.String()),
		fmt.Sprintf("%.2f ticks/s (%.0f)", s.ticksPerSec, s.configuredTicks),
		fmt.Sprintf("%.2f frames/s (%.0f)", s.framesPerSec, s.configuredFrames),
	}
	if dropped := logging.Dropped(); dropped > 0 {
		parts = append(parts, design.TextWarningStyle.Render(fmt.Sprintf("%d log lines dropped", dropped)))
	}
	return strings.Join(parts, design.TextMutedStyle.Render(" │ "))
}

func (s *Status) helpLine(width int) string {
	s.help.Width = width
	bindings := s.keys.HelpBindings(s.mode)
	if s.showHelp {
		return s.help.ShortHelpView(bindings)
	}
	for _, b := range bindings {
		if b.Help().Desc == keymap.Describe(model.Help()) {
			return s.help.ShortHelpView([]key.Binding{b})
		}
	}
	return ""
}

func logStyle(level logging.LogLevel) lipgloss.Style {
	switch level {
	case logging.LevelDebug:
		return design.LogDebugStyle
	case logging.LevelWarn:
		return design.LogWarnStyle
	case logging.LevelError:
		return design.LogErrorStyle
	default:
		return design.LogInfoStyle
	}
}
