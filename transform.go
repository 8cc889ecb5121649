package raster

import (
	"fmt"
	"math"
)

// Transformer provides transformations of a single bound source image.
// The source is never mutated: every operation allocates and returns a
// fresh image, so callers keep the original.
//
// Operations are synchronous and share no state across calls; a
// Transformer is safe for concurrent use as long as nothing mutates the
// bound source.
type Transformer struct {
	src           *Image
	width, height int
}

// NewTransformer binds a Transformer to img.
// It returns ErrNilImage if img is nil.
func NewTransformer(img *Image) (*Transformer, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: transformer source", ErrNilImage)
	}
	return &Transformer{src: img, width: img.Width(), height: img.Height()}, nil
}

// newOutput allocates an uninitialized image with the given dimensions.
// Dimensions are trusted; they derive from the validated source.
func newOutput(w, h int) *Image {
	return &Image{width: w, height: h, pix: make([]Color, w*h)}
}

// mapPixels returns a new image where every pixel is fn of the source pixel.
func (t *Transformer) mapPixels(fn func(Color) Color) *Image {
	out := newOutput(t.width, t.height)
	for row := range t.height {
		for col := range t.width {
			out.set(col, row, fn(t.src.at(col, row)))
		}
	}
	return out
}

// Grayscale returns the grayscale version of the source: every pixel is
// replaced by (Y, Y, Y) where Y is the luminance rounded to the nearest
// integer. The output is fully opaque.
func (t *Transformer) Grayscale() *Image {
	return t.mapPixels(Color.Gray)
}

// RedChannel returns a copy with the green and blue channels zeroed;
// alpha and red pass through.
func (t *Transformer) RedChannel() *Image {
	return t.mapPixels(func(c Color) Color {
		return c & 0xFFFF0000
	})
}

// Negative returns the per-channel negative: each of R, G, B becomes
// 255 - value. Alpha passes through.
func (t *Transformer) Negative() *Image {
	return t.mapPixels(func(c Color) Color {
		return ARGB(c.Alpha(), 255-c.Red(), 255-c.Green(), 255-c.Blue())
	})
}

// Posterize maps each channel independently onto three bands:
// [0,64] -> 32, (64,128] -> 96, (128,255] -> 222. Alpha passes through.
// Posterize is idempotent.
func (t *Transformer) Posterize() *Image {
	return t.mapPixels(func(c Color) Color {
		return ARGB(c.Alpha(),
			posterizeChannel(c.Red()),
			posterizeChannel(c.Green()),
			posterizeChannel(c.Blue()))
	})
}

// Mirror returns a copy with the columns reversed:
// out(x, y) = src(W-1-x, y).
func (t *Transformer) Mirror() *Image {
	out := newOutput(t.width, t.height)
	for row := range t.height {
		for col := range t.width {
			out.set(col, row, t.src.at(t.width-col-1, row))
		}
	}
	return out
}

// Clip extracts the sub-image bounded by box (corners inclusive).
// Output pixel (j, i) equals source pixel (j+box.Left, i+box.Top).
// It returns ErrRegionOutOfBounds unless the box lies entirely within
// the source.
func (t *Transformer) Clip(box Rect) (*Image, error) {
	if !box.In(t.width, t.height) {
		return nil, fmt.Errorf("%w: clip %+v in %dx%d", ErrRegionOutOfBounds, box, t.width, t.height)
	}
	out := newOutput(box.Width(), box.Height())
	for row := range out.height {
		for col := range out.width {
			out.set(col, row, t.src.at(col+box.Left, row+box.Top))
		}
	}
	return out, nil
}

// Rotate rotates the source about its center by degrees, clockwise for
// positive values in image coordinates (y grows downward). The output
// canvas is the bounding box of the four rotated source corners and is
// filled opaque white wherever no source pixel maps. Sampling is
// nearest-neighbor with truncation; no interpolation is performed.
// Angles outside [0, 360) are folded.
func (t *Transformer) Rotate(degrees float64) *Image {
	rad := math.Mod(degrees, 360) * math.Pi / 180
	sin, cos := math.Sincos(rad)

	w, h := t.width, t.height
	outW := int(math.Abs(cos)*float64(w) + math.Abs(sin)*float64(h))
	outH := int(math.Abs(sin)*float64(w) + math.Abs(cos)*float64(h))
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}

	out := newOutput(outW, outH)
	for i := range out.pix {
		out.pix[i] = White
	}

	// Inverse mapping: for each destination pixel, rotate back into the
	// source frame about the shared (integer) center.
	cx, cy := float64(w/2), float64(h/2)
	for row := range outH {
		for col := range outW {
			dx := float64(col - outW/2)
			dy := float64(row - outH/2)
			srcX := int(dx*cos + dy*sin + cx)
			srcY := int(-dx*sin + dy*cos + cy)
			if srcX >= 0 && srcX < w && srcY >= 0 && srcY < h {
				out.set(col, row, t.src.at(srcX, srcY))
			}
		}
	}
	return out
}
