package raster

import (
	"fmt"

	hwysort "github.com/ajroetker/go-highway/hwy/contrib/sort"
)

// Denoise replaces every pixel with the per-channel median of its 3x3
// neighborhood. Neighbors outside the image are excluded, so the window
// holds 4 to 9 samples at corners and edges. The median of an even
// sample count is the truncated mean of the two central values.
// The output is fully opaque.
func (t *Transformer) Denoise() *Image {
	w, h := t.width, t.height
	buf := getPlaneBuf(w, h)
	defer putPlaneBuf(buf)
	buf.fill(t.src)

	out := newOutput(w, h)
	var rs, gs, bs [9]int32
	for row := range h {
		for col := range w {
			n := 0
			for y := max(row-1, 0); y <= min(row+1, h-1); y++ {
				for x := max(col-1, 0); x <= min(col+1, w-1); x++ {
					rs[n] = buf.r[y][x]
					gs[n] = buf.g[y][x]
					bs[n] = buf.b[y][x]
					n++
				}
			}
			out.set(col, row, RGB(
				medianOf(rs[:n]),
				medianOf(gs[:n]),
				medianOf(bs[:n])))
		}
	}
	return out
}

// medianOf sorts the window in place and returns its median, truncating
// the mean of the two middle samples when the count is even.
func medianOf(window []int32) uint8 {
	hwysort.VQSort(window)
	n := len(window)
	if n%2 == 1 {
		return clampToUint8(window[n/2])
	}
	return clampToUint8((window[n/2] + window[n/2-1]) / 2)
}

// Weather replaces every pixel with the per-channel minimum of its 3x3
// neighborhood, with the same edge-excluded window as Denoise. The three
// minima are taken independently and need not come from one source
// pixel. The output is fully opaque.
func (t *Transformer) Weather() *Image {
	w, h := t.width, t.height
	buf := getPlaneBuf(w, h)
	defer putPlaneBuf(buf)
	buf.fill(t.src)

	out := newOutput(w, h)
	for row := range h {
		// Vertical pass: lane-wise minimum of the clipped row window.
		copy(buf.vr, buf.r[row])
		copy(buf.vg, buf.g[row])
		copy(buf.vb, buf.b[row])
		if row > 0 {
			vecMinInto(buf.vr, buf.r[row-1])
			vecMinInto(buf.vg, buf.g[row-1])
			vecMinInto(buf.vb, buf.b[row-1])
		}
		if row+1 < h {
			vecMinInto(buf.vr, buf.r[row+1])
			vecMinInto(buf.vg, buf.g[row+1])
			vecMinInto(buf.vb, buf.b[row+1])
		}

		// Horizontal pass over the vertical minima.
		for col := range w {
			lo, hi := max(col-1, 0), min(col+1, w-1)
			r, g, b := buf.vr[col], buf.vg[col], buf.vb[col]
			for x := lo; x <= hi; x++ {
				r = min(r, buf.vr[x])
				g = min(g, buf.vg[x])
				b = min(b, buf.vb[x])
			}
			out.set(col, row, RGB(clampToUint8(r), clampToUint8(g), clampToUint8(b)))
		}
	}
	return out
}

// BoxPaint partitions the image into non-overlapping boxSize-by-boxSize
// blocks starting at (0, 0) and replaces each block with its truncated
// per-channel average. Blocks clipped by the right or bottom edge are
// averaged over only the pixels actually present. The output is fully
// opaque. It returns ErrInvalidDimension if boxSize < 1.
func (t *Transformer) BoxPaint(boxSize int) (*Image, error) {
	if boxSize < 1 {
		return nil, fmt.Errorf("%w: box size %d", ErrInvalidDimension, boxSize)
	}
	w, h := t.width, t.height
	out := newOutput(w, h)

	for top := 0; top < h; top += boxSize {
		bottom := min(top+boxSize, h)
		for left := 0; left < w; left += boxSize {
			right := min(left+boxSize, w)

			var sumR, sumG, sumB int64
			for row := top; row < bottom; row++ {
				for col := left; col < right; col++ {
					c := t.src.at(col, row)
					sumR += int64(c.Red())
					sumG += int64(c.Green())
					sumB += int64(c.Blue())
				}
			}
			count := int64((bottom - top) * (right - left))
			avg := RGB(uint8(sumR/count), uint8(sumG/count), uint8(sumB/count))

			for row := top; row < bottom; row++ {
				for col := left; col < right; col++ {
					out.set(col, row, avg)
				}
			}
		}
	}
	return out, nil
}
