package raster

import (
	"errors"
	"testing"
)

func TestGreenScreenTilesOverLargestRegion(t *testing.T) {
	green := RGB(0, 255, 0)
	k := Black

	// One 5-pixel region with a hole at (row 2, col 2) and a separate
	// 2-pixel region in the bottom-right corner.
	src := mustImage(t, [][]Color{
		{k, k, k, k, k, k},
		{k, green, green, green, k, k},
		{k, green, k, green, k, k},
		{k, k, k, k, k, k},
		{k, k, k, k, green, green},
	})
	background := mustImage(t, [][]Color{
		{RGB(1, 2, 3), RGB(4, 5, 6)},
		{RGB(7, 8, 9), RGB(10, 11, 12)},
	})

	got, err := mustTransformer(t, src).GreenScreen(green, background)
	if err != nil {
		t.Fatalf("GreenScreen: %v", err)
	}

	// The 2x2 background tiles from the region's top-left corner (1, 1);
	// the hole keeps its source color and the smaller region is untouched.
	want := mustImage(t, [][]Color{
		{k, k, k, k, k, k},
		{k, RGB(1, 2, 3), RGB(4, 5, 6), RGB(1, 2, 3), k, k},
		{k, RGB(7, 8, 9), k, RGB(7, 8, 9), k, k},
		{k, k, k, k, k, k},
		{k, k, k, k, green, green},
	})
	if !got.Equal(want) {
		t.Errorf("GreenScreen:\ngot:\n%v\nwant:\n%v", got, want)
	}
	// The bound source must be untouched.
	if c, _ := src.RGBAt(1, 1); c != green {
		t.Error("GreenScreen mutated its source")
	}
}

func TestGreenScreenDiagonalConnectivity(t *testing.T) {
	green := RGB(0, 255, 0)
	k := Black

	// The diagonal run is 8-connected, so it forms a single 3-pixel
	// region and beats the 2-pixel pair in the top-right corner.
	src := mustImage(t, [][]Color{
		{green, k, k, green, green},
		{k, green, k, k, k},
		{k, k, green, k, k},
		{k, k, k, k, k},
		{k, k, k, k, k},
	})
	red := mustImage(t, [][]Color{{RGB(255, 0, 0)}})

	got, err := mustTransformer(t, src).GreenScreen(green, red)
	if err != nil {
		t.Fatalf("GreenScreen: %v", err)
	}

	for _, p := range []coord{{0, 0}, {1, 1}, {2, 2}} {
		c, err := got.RGBAt(p.col, p.row)
		if err != nil {
			t.Fatal(err)
		}
		if c != RGB(255, 0, 0) {
			t.Errorf("diagonal pixel (row %d, col %d) = %v, want red", p.row, p.col, c)
		}
	}
	for _, p := range []coord{{0, 3}, {0, 4}} {
		c, err := got.RGBAt(p.col, p.row)
		if err != nil {
			t.Fatal(err)
		}
		if c != green {
			t.Errorf("pixel (row %d, col %d) = %v, want untouched green", p.row, p.col, c)
		}
	}
}

func TestGreenScreenTieKeepsFirstRegion(t *testing.T) {
	green := RGB(0, 255, 0)
	k := Black

	src := mustImage(t, [][]Color{
		{green, green, k, green, green},
	})
	red := mustImage(t, [][]Color{{RGB(255, 0, 0)}})

	got, err := mustTransformer(t, src).GreenScreen(green, red)
	if err != nil {
		t.Fatalf("GreenScreen: %v", err)
	}

	want := mustImage(t, [][]Color{
		{RGB(255, 0, 0), RGB(255, 0, 0), k, green, green},
	})
	if !got.Equal(want) {
		t.Errorf("GreenScreen:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestGreenScreenNoMatch(t *testing.T) {
	src := grayImage(t, [][]uint8{{1, 2}, {3, 4}})
	background := mustImage(t, [][]Color{{White}})

	got, err := mustTransformer(t, src).GreenScreen(RGB(0, 255, 0), background)
	if err != nil {
		t.Fatalf("GreenScreen: %v", err)
	}
	if !got.Equal(src) {
		t.Error("with no matching pixel the result should copy the source")
	}

	// The copy must be independent of the source.
	if err := got.SetRGB(0, 0, White); err != nil {
		t.Fatal(err)
	}
	if c, _ := src.RGBAt(0, 0); c != RGB(1, 1, 1) {
		t.Error("mutating the result leaked into the source")
	}
}

func TestGreenScreenNilBackground(t *testing.T) {
	src := grayImage(t, [][]uint8{{1}})
	if _, err := mustTransformer(t, src).GreenScreen(RGB(0, 255, 0), nil); !errors.Is(err, ErrNilImage) {
		t.Errorf("GreenScreen(nil background) error = %v, want ErrNilImage", err)
	}
}

func TestLargestRegionBoundingBox(t *testing.T) {
	green := RGB(0, 255, 0)
	k := Black

	src := mustImage(t, [][]Color{
		{k, k, k, k},
		{k, k, green, k},
		{k, green, k, k},
		{k, k, k, k},
	})

	r := mustTransformer(t, src).largestRegion(green)
	if r == nil {
		t.Fatal("expected a region")
	}
	if len(r.pixels) != 2 {
		t.Fatalf("region size = %d, want 2", len(r.pixels))
	}
	want := Rect{Left: 1, Top: 1, Right: 2, Bottom: 2}
	if r.box != want {
		t.Errorf("bounding box = %+v, want %+v", r.box, want)
	}

	if mustTransformer(t, src).largestRegion(White) != nil {
		t.Error("largestRegion should return nil when nothing matches")
	}
}
