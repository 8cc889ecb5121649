package raster

import (
	"errors"
	"testing"
)

func distinctColors(t *testing.T, img *Image) map[Color]int {
	t.Helper()
	seen := make(map[Color]int)
	for row := range img.Height() {
		for col := range img.Width() {
			c, err := img.RGBAt(col, row)
			if err != nil {
				t.Fatal(err)
			}
			seen[c]++
		}
	}
	return seen
}

func TestQuantize(t *testing.T) {
	// Two tight clusters: near-black and near-white.
	src := mustImage(t, [][]Color{
		{RGB(10, 10, 10), RGB(12, 12, 12), RGB(240, 240, 240)},
		{RGB(11, 11, 11), RGB(242, 242, 242), RGB(244, 244, 244)},
	})

	got, err := mustTransformer(t, src).Quantize(2)
	if err != nil {
		t.Fatalf("Quantize: %v", err)
	}
	if got.Width() != src.Width() || got.Height() != src.Height() {
		t.Fatalf("dimensions = %dx%d, want %dx%d",
			got.Width(), got.Height(), src.Width(), src.Height())
	}

	seen := distinctColors(t, got)
	if len(seen) > 2 {
		t.Fatalf("palette has %d colors, want at most 2: %v", len(seen), seen)
	}
	// The clusters are far apart, so each palette entry covers exactly
	// one of them: three pixels apiece.
	for c, n := range seen {
		if n != 3 {
			t.Errorf("palette color %v covers %d pixels, want 3", c, n)
		}
		if c.Alpha() != 255 {
			t.Errorf("palette color %v is not opaque", c)
		}
	}
}

func TestQuantizeSingleColor(t *testing.T) {
	src := mustImage(t, [][]Color{
		{RGB(10, 20, 30), RGB(200, 100, 50)},
		{RGB(0, 0, 0), RGB(255, 255, 255)},
	})

	got, err := mustTransformer(t, src).Quantize(1)
	if err != nil {
		t.Fatalf("Quantize: %v", err)
	}
	if n := len(distinctColors(t, got)); n != 1 {
		t.Errorf("palette has %d colors, want 1", n)
	}
}

func TestQuantizeInvalidPaletteSize(t *testing.T) {
	src := grayImage(t, [][]uint8{{1}})
	tr := mustTransformer(t, src)
	for _, n := range []int{0, -3} {
		if _, err := tr.Quantize(n); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Quantize(%d) error = %v, want ErrInvalidDimension", n, err)
		}
	}
}
