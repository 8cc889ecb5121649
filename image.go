package raster

import (
	"fmt"
	"image"
	"strings"
)

// Image is a fixed-size 2-D grid of packed ARGB pixels. Pixel (col, row)
// is column col and row row; by default the origin (0, 0) is the top-left
// corner. SetOriginBottomLeft changes only how the row index maps onto
// the underlying storage, not the storage itself.
//
// An Image is mutable in place through SetRGB and is never resized after
// creation. A W-by-H image uses ~4 W H bytes.
type Image struct {
	width, height int
	pix           []Color // row-major in storage order
	bottomOrigin  bool
}

// New creates a w-by-h image with every pixel opaque black.
// It returns ErrInvalidDimension if either dimension is not positive.
func New(w, h int) (*Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, w, h)
	}
	img := &Image{
		width:  w,
		height: h,
		pix:    make([]Color, w*h),
	}
	for i := range img.pix {
		img.pix[i] = Black
	}
	return img, nil
}

// Clone returns a deep copy of the image, including its origin convention.
func (img *Image) Clone() *Image {
	out := &Image{
		width:        img.width,
		height:       img.height,
		pix:          make([]Color, len(img.pix)),
		bottomOrigin: img.bottomOrigin,
	}
	copy(out.pix, img.pix)
	return out
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// SetOriginTopLeft makes row 0 the top row. This is the default.
func (img *Image) SetOriginTopLeft() { img.bottomOrigin = false }

// SetOriginBottomLeft makes row 0 the bottom row.
func (img *Image) SetOriginBottomLeft() { img.bottomOrigin = true }

// storageRow maps a logical row index onto the underlying storage row.
func (img *Image) storageRow(row int) int {
	if img.bottomOrigin {
		return img.height - row - 1
	}
	return row
}

// inBounds reports whether (col, row) addresses a pixel.
func (img *Image) inBounds(col, row int) bool {
	return col >= 0 && col < img.width && row >= 0 && row < img.height
}

// at returns the pixel at (col, row) without bounds checking.
// Callers must guarantee the coordinate is inside the image.
func (img *Image) at(col, row int) Color {
	return img.pix[img.storageRow(row)*img.width+col]
}

// set writes the pixel at (col, row) without bounds checking.
func (img *Image) set(col, row int, c Color) {
	img.pix[img.storageRow(row)*img.width+col] = c
}

// RGBAt returns the packed color of pixel (col, row). It returns
// ErrIndexOutOfRange unless 0 <= col < Width and 0 <= row < Height.
func (img *Image) RGBAt(col, row int) (Color, error) {
	if !img.inBounds(col, row) {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, col, row, img.width, img.height)
	}
	return img.at(col, row), nil
}

// SetRGB sets the packed color of pixel (col, row). It returns
// ErrIndexOutOfRange unless 0 <= col < Width and 0 <= row < Height.
func (img *Image) SetRGB(col, row int, c Color) error {
	if !img.inBounds(col, row) {
		return fmt.Errorf("%w: (%d, %d) in %dx%d", ErrIndexOutOfRange, col, row, img.width, img.height)
	}
	img.set(col, row, c)
	return nil
}

// Equal reports whether two images have the same dimensions and
// pixel-wise equal packed color values.
func (img *Image) Equal(other *Image) bool {
	if other == nil {
		return false
	}
	if img.width != other.width || img.height != other.height {
		return false
	}
	for row := range img.height {
		for col := range img.width {
			if img.at(col, row) != other.at(col, row) {
				return false
			}
		}
	}
	return true
}

// String renders the image as a matrix of #RRGGBB values, one row per line.
func (img *Image) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d-by-%d image (RGB values in hex)\n", img.width, img.height)
	for row := range img.height {
		for col := range img.width {
			fmt.Fprintf(&sb, "#%06X ", uint32(img.at(col, row))&0xFFFFFF)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimSpace(sb.String())
}

// FromImage converts a decoded standard-library image into an Image.
// Channel values are reduced from 16-bit to 8-bit precision.
// It returns nil if src is nil or has an empty bounds rectangle.
func FromImage(src image.Image) *Image {
	if src == nil {
		return nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	out := &Image{
		width:  w,
		height: h,
		pix:    make([]Color, w*h),
	}
	for row := range h {
		for col := range w {
			r, g, bl, a := src.At(b.Min.X+col, b.Min.Y+row).RGBA()
			out.set(col, row, ARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(bl>>8)))
		}
	}
	return out
}

// ToImage converts the image to a standard-library *image.RGBA, suitable
// for encoding with any registered codec.
func (img *Image) ToImage() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for row := range img.height {
		for col := range img.width {
			c := img.at(col, row)
			idx := out.PixOffset(col, row)
			out.Pix[idx+0] = c.Red()
			out.Pix[idx+1] = c.Green()
			out.Pix[idx+2] = c.Blue()
			out.Pix[idx+3] = c.Alpha()
		}
	}
	return out
}
