package raster

// Rect is an axis-aligned rectangular region described by two inclusive
// corners: (Left, Top) and (Right, Bottom).
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Width returns the number of columns covered by the rectangle.
func (r Rect) Width() int { return r.Right - r.Left + 1 }

// Height returns the number of rows covered by the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top + 1 }

// In reports whether the rectangle is well formed and lies entirely
// within a w-by-h image.
func (r Rect) In(w, h int) bool {
	return r.Left >= 0 && r.Top >= 0 &&
		r.Right >= r.Left && r.Bottom >= r.Top &&
		r.Right < w && r.Bottom < h
}
