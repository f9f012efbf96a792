// Package terminal turns the terminal into a single stream of events.
//
// A Tui owns a bubbletea program for raw mode, the alternate screen and
// input decoding, plus two timers producing Tick and Render events. All three
// sources feed one channel which the dispatcher consumes through Next. The
// bubbletea program is only used as an input decoder and a renderer: the
// dispatcher composes frames itself and hands the finished content over
// through Draw.
package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"audioshelf/internal/tui/model"
	"audioshelf/internal/tui/view"
	"audioshelf/pkg/logging"
)

const subsystem = "Terminal"

const (
	eventBufferSize = 64
	exitTimeout     = 2 * time.Second
	defaultWidth    = 80
	defaultHeight   = 24
)

// ErrStopped is returned by Enter after Stop.
var ErrStopped = errors.New("terminal stopped")

// Option configures a Tui.
type Option func(*Tui)

// TickRate sets the number of Tick events per second. Zero disables ticks.
func TickRate(rate float64) Option {
	return func(t *Tui) { t.tickRate = rate }
}

// FrameRate sets the number of Render events per second. Zero disables them.
func FrameRate(rate float64) Option {
	return func(t *Tui) { t.frameRate = rate }
}

// WithMouse enables mouse reporting.
func WithMouse(enabled bool) Option {
	return func(t *Tui) { t.mouse = enabled }
}

// WithInput reads input from r instead of the controlling terminal.
func WithInput(r io.Reader) Option {
	return func(t *Tui) { t.input = r }
}

// WithOutput writes the screen to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(t *Tui) { t.output = w }
}

// Tui is the terminal event source. Enter, Exit, Suspend, Stop, Draw and
// Clear are called from the dispatcher goroutine; Exit is also safe to call
// from a panic or signal handler.
type Tui struct {
	tickRate  float64
	frameRate float64
	mouse     bool
	input     io.Reader
	output    io.Writer

	events   chan model.Event
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	program  *tea.Program
	finished chan struct{}
	session  chan struct{}
	entered  bool
	stopped  bool
	closed   bool
	restores int
	width    int
	height   int
	content  string
}

// New creates a Tui. Nothing touches the terminal until Enter.
func New(opts ...Option) *Tui {
	t := &Tui{
		tickRate:  4,
		frameRate: 60,
		events:    make(chan model.Event, eventBufferSize),
		done:      make(chan struct{}),
		width:     defaultWidth,
		height:    defaultHeight,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Enter puts the terminal into raw mode on the alternate screen and starts
// the input reader and both timers. Entering twice is a no-op.
func (t *Tui) Enter() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return ErrStopped
	}
	if t.entered {
		return nil
	}

	session := make(chan struct{})
	finished := make(chan struct{})
	p := tea.NewProgram(&bridge{tui: t, session: session}, t.programOptions()...)

	go func() {
		defer close(finished)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			logging.Error(subsystem, err, "Terminal program exited")
		}
	}()

	t.program = p
	t.finished = finished
	t.session = session
	t.entered = true

	t.startTimer(model.EventTick, t.tickRate, session)
	t.startTimer(model.EventRender, t.frameRate, session)
	t.forwardSignals(session)

	logging.Debug(subsystem, "Entered terminal (tick %.2f/s, frame %.2f/s)", t.tickRate, t.frameRate)
	return nil
}

func (t *Tui) programOptions() []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
		tea.WithReportFocus(),
	}
	if t.mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}
	if t.output != nil {
		opts = append(opts, tea.WithOutput(t.output))
	}
	return opts
}

// Exit restores the terminal and stops the timers. It is idempotent and is
// the restore hook for the panic handler.
func (t *Tui) Exit() error {
	t.mu.Lock()
	if !t.entered {
		t.mu.Unlock()
		return nil
	}
	p, finished := t.program, t.finished
	close(t.session)
	t.entered = false
	t.program = nil
	t.restores++
	t.mu.Unlock()

	go p.Quit()
	select {
	case <-finished:
	case <-time.After(exitTimeout):
		logging.Warn(subsystem, "Terminal program did not quit within %s, killing it", exitTimeout)
		p.Kill()
		<-finished
	}
	logging.Debug(subsystem, "Restored terminal")
	return nil
}

// Suspend restores the terminal and stops the process as if the user had
// pressed ctrl+z in a shell. It returns once the process is continued; the
// caller then calls Enter again.
func (t *Tui) Suspend() error {
	if err := t.Exit(); err != nil {
		return err
	}
	return suspendProcess()
}

// Stop restores the terminal and closes the event stream for good.
func (t *Tui) Stop() error {
	err := t.Exit()
	t.stopOnce.Do(func() {
		t.mu.Lock()
		t.stopped = true
		t.mu.Unlock()
		close(t.done)
	})
	return err
}

// Next blocks until an event is available. It returns false once the Tui is
// stopped or ctx is cancelled, and on every call after that.
func (t *Tui) Next(ctx context.Context) (model.Event, bool) {
	t.mu.Lock()
	closed := t.closed
	t.mu.Unlock()
	if closed {
		return model.Event{}, false
	}

	select {
	case <-t.done:
	case <-ctx.Done():
	default:
		select {
		case ev := <-t.events:
			return ev, true
		case <-t.done:
		case <-ctx.Done():
		}
	}

	t.mu.Lock()
	t.closed = true
	t.mu.Unlock()
	return model.Event{}, false
}

// Size returns the current buffer size in cells.
func (t *Tui) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Resize sets the buffer size used for the next frames.
func (t *Tui) Resize(width, height int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width, t.height = max(width, 0), max(height, 0)
	return nil
}

// Draw builds a frame of the current size, lets fn render into it and
// schedules the result for display. The frame is only valid inside fn.
func (t *Tui) Draw(fn func(*view.Frame)) error {
	width, height := t.Size()
	frame := view.NewFrame(width, height)
	fn(frame)

	t.mu.Lock()
	t.content = frame.String()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		go p.Send(repaintMsg{})
	}
	return nil
}

// Clear wipes the screen; the next frame is painted onto a blank terminal.
func (t *Tui) Clear() error {
	t.mu.Lock()
	p := t.program
	t.mu.Unlock()

	if p != nil {
		go p.Send(clearMsg{})
	}
	return nil
}

func (t *Tui) view() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.content
}

// emit queues ev unless the session or the Tui ends first.
func (t *Tui) emit(ev model.Event, session <-chan struct{}) {
	select {
	case t.events <- ev:
	case <-session:
	case <-t.done:
	}
}

func (t *Tui) startTimer(kind model.EventKind, rate float64, session <-chan struct{}) {
	if rate <= 0 {
		return
	}
	interval := time.Duration(float64(time.Second) / rate)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t.emit(model.Event{Kind: kind}, session)
			case <-session:
				return
			case <-t.done:
				return
			}
		}
	}()
}

// forwardSignals turns SIGTERM and SIGHUP into a Quit event for the
// lifetime of the session.
func (t *Tui) forwardSignals(session <-chan struct{}) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			logging.Info(subsystem, "Received %s, quitting", sig)
			t.emit(model.Event{Kind: model.EventQuit}, session)
		case <-session:
		case <-t.done:
		}
	}()
}
