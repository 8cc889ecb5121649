package raster

import "fmt"

// coord identifies a pixel by (row, col). Using a struct key keeps
// distinct coordinates distinct, unlike concatenated-string keys where
// (1,23) and (12,3) collide.
type coord struct {
	row, col int
}

// region is a connected set of pixels plus its bounding rectangle.
type region struct {
	pixels []coord
	box    Rect
}

// GreenScreen finds the largest 8-connected region of pixels exactly
// equal to screen, then overlays background onto that region: every
// pixel inside the region's bounding rectangle whose source color equals
// screen is replaced by the corresponding background pixel. The overlay
// is anchored at the rectangle's top-left corner and tiles the
// background with wraparound on both axes when it is smaller than the
// rectangle. The source is not mutated.
//
// If no pixel matches screen, a plain copy of the source is returned.
// It returns ErrNilImage if background is nil.
func (t *Transformer) GreenScreen(screen Color, background *Image) (*Image, error) {
	if background == nil {
		return nil, fmt.Errorf("%w: background", ErrNilImage)
	}

	largest := t.largestRegion(screen)
	out := t.src.Clone()
	if largest == nil {
		return out, nil
	}

	box := largest.box
	bw, bh := background.Width(), background.Height()
	for row := box.Top; row <= box.Bottom; row++ {
		for col := box.Left; col <= box.Right; col++ {
			if t.src.at(col, row) == screen {
				out.set(col, row, background.at((col-box.Left)%bw, (row-box.Top)%bh))
			}
		}
	}
	return out, nil
}

// largestRegion scans the image and returns the largest maximal
// 8-connected region of pixels equal to match, or nil when no pixel
// matches. Ties keep the region found first in row-major scan order.
func (t *Transformer) largestRegion(match Color) *region {
	visited := make([]bool, t.width*t.height)
	var largest *region

	for row := range t.height {
		for col := range t.width {
			if visited[row*t.width+col] || t.src.at(col, row) != match {
				continue
			}
			r := t.growRegion(coord{row, col}, match, visited)
			if largest == nil || len(r.pixels) > len(largest.pixels) {
				largest = r
			}
		}
	}
	return largest
}

// growRegion flood-fills the 8-connected component of match-colored
// pixels containing start, marking visited as it goes. start must match
// and be unvisited.
func (t *Transformer) growRegion(start coord, match Color, visited []bool) *region {
	r := &region{
		box: Rect{Left: start.col, Top: start.row, Right: start.col, Bottom: start.row},
	}
	stack := []coord{start}
	visited[start.row*t.width+start.col] = true

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		r.pixels = append(r.pixels, c)

		r.box.Left = min(r.box.Left, c.col)
		r.box.Right = max(r.box.Right, c.col)
		r.box.Top = min(r.box.Top, c.row)
		r.box.Bottom = max(r.box.Bottom, c.row)

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				row, col := c.row+dy, c.col+dx
				if row < 0 || row >= t.height || col < 0 || col >= t.width {
					continue
				}
				if visited[row*t.width+col] || t.src.at(col, row) != match {
					continue
				}
				visited[row*t.width+col] = true
				stack = append(stack, coord{row, col})
			}
		}
	}
	return r
}
