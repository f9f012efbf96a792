package view

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type segment struct {
	x, width int
	text     string
}

// Frame is the drawing surface handed to components for the duration of one
// draw call. Components render strings into regions; the terminal turns the
// finished frame into the screen contents. A Frame must not be retained
// after the draw call returns.
type Frame struct {
	width  int
	height int
	rows   [][]segment
}

// NewFrame creates an empty frame of the given size in cells.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{
		width:  width,
		height: height,
		rows:   make([][]segment, height),
	}
}

// Area is the full region covered by the frame.
func (f *Frame) Area() Rect {
	return Rect{Width: f.width, Height: f.height}
}

// Render places content in area. Lines beyond the area height are dropped,
// lines wider than the area are truncated and shorter ones padded. Content
// previously rendered into overlapping cells of the same rows is replaced.
func (f *Frame) Render(area Rect, content string) {
	clip := area.Intersect(f.Area())
	if clip.Empty() {
		return
	}

	lines := strings.Split(content, "\n")
	skip := clip.Y - area.Y
	for i := 0; i < clip.Height; i++ {
		line := ""
		if idx := skip + i; idx < len(lines) {
			line = lines[idx]
		}
		f.put(clip.Y+i, segment{x: clip.X, width: clip.Width, text: fit(line, clip.Width)})
	}
}

func (f *Frame) put(row int, s segment) {
	kept := f.rows[row][:0]
	for _, old := range f.rows[row] {
		if old.x+old.width <= s.x || s.x+s.width <= old.x {
			kept = append(kept, old)
		}
	}
	f.rows[row] = append(kept, s)
}

// String composes the frame into newline separated rows.
func (f *Frame) String() string {
	var b strings.Builder
	for y, row := range f.rows {
		if y > 0 {
			b.WriteByte('\n')
		}
		sort.Slice(row, func(i, j int) bool { return row[i].x < row[j].x })
		col := 0
		for _, s := range row {
			if s.x > col {
				b.WriteString(strings.Repeat(" ", s.x-col))
			}
			b.WriteString(s.text)
			col = s.x + s.width
		}
	}
	return b.String()
}

// fit truncates or pads line to exactly width cells.
func fit(line string, width int) string {
	line = lipgloss.NewStyle().Inline(true).MaxWidth(width).Render(line)
	if w := lipgloss.Width(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return line
}
