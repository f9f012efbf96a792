package view

// MinRegionHeight is the smallest height a flexible region is given while
// space remains.
const MinRegionHeight = 3

// StackVertical splits area into len(heights) full-width regions stacked top
// to bottom. A positive height is a fixed row count; zero marks the region as
// flexible, and flexible regions share the rows left after the fixed ones
// evenly, the first ones taking the remainder. Regions that no longer fit
// are returned empty at the bottom edge.
func StackVertical(area Rect, heights []int) []Rect {
	regions := make([]Rect, len(heights))
	if len(heights) == 0 {
		return regions
	}

	fixed, flexible := 0, 0
	for _, h := range heights {
		if h > 0 {
			fixed += h
		} else {
			flexible++
		}
	}

	share, extra := 0, 0
	if flexible > 0 {
		free := max(area.Height-fixed, 0)
		share = free / flexible
		extra = free % flexible
		if share < MinRegionHeight && free >= MinRegionHeight {
			share, extra = MinRegionHeight, 0
		}
	}

	y := area.Y
	for i, h := range heights {
		if h <= 0 {
			h = share
			if extra > 0 {
				h++
				extra--
			}
		}
		h = max(min(h, area.Bottom()-y), 0)
		regions[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
	}
	return regions
}
