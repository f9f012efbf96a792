package view

import "fmt"

// Rect is a rectangular region of terminal cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns the rectangle at (x, y) with the given size. Negative sizes
// are clamped to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Bottom is the first row below r.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Right is the first column right of r.
func (r Rect) Right() int { return r.X + r.Width }

// Intersect returns the overlap of r and o, or an empty Rect.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= x || bottom <= y {
		return Rect{X: x, Y: y}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
