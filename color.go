package raster

import (
	"fmt"
	"math"
)

// Color is a packed 32-bit ARGB value: bits 24-31 alpha, 16-23 red,
// 8-15 green, 0-7 blue. Equality is bitwise.
type Color uint32

const (
	// Black is opaque black, the color of a freshly created Image.
	Black Color = 0xFF000000
	// White is opaque white, used as the background fill by Rotate.
	White Color = 0xFFFFFFFF
)

// RGB packs three 8-bit channels into an opaque Color (alpha = 255).
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// Intensity returns the monochrome luminance of c in [0, 255] using the
// NTSC weights Y = 0.299 R + 0.587 G + 0.114 B. When R = G = B the result
// is the exact integer channel value, with no floating-point roundoff.
func (c Color) Intensity() float64 {
	r := c.Red()
	g := c.Green()
	b := c.Blue()
	if r == g && r == b {
		return float64(r)
	}
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// Gray returns the opaque grayscale version of c, with every channel set
// to the luminance rounded to the nearest integer.
func (c Color) Gray() Color {
	y := uint8(math.Round(c.Intensity()))
	return RGB(y, y, y)
}

// Compatible reports whether two colors differ enough in luminance to be
// legible against each other (difference of at least 128).
func Compatible(a, b Color) bool {
	return math.Abs(a.Intensity()-b.Intensity()) >= 128
}

// String formats the color as #AARRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// posterizeChannel maps a channel value onto the three posterize bands:
// [0,64] -> 32, (64,128] -> 96, (128,255] -> 222. The value 64 belongs to
// the lowest band.
func posterizeChannel(v uint8) uint8 {
	switch {
	case v <= 64:
		return 32
	case v <= 128:
		return 96
	default:
		return 222
	}
}

// clampToUint8 clamps a value to the [0, 255] channel range.
func clampToUint8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
