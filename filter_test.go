package raster

import (
	"errors"
	"testing"
)

// filterGrid is a 3x3 gray ramp used by the neighborhood filter tests.
// Corners see 4 neighbors, edges 6, the center all 9.
func filterGrid(t *testing.T) *Image {
	t.Helper()
	return grayImage(t, [][]uint8{
		{10, 20, 30},
		{40, 50, 60},
		{70, 80, 90},
	})
}

func TestDenoise(t *testing.T) {
	want := grayImage(t, [][]uint8{
		{30, 35, 40},
		{45, 50, 55},
		{60, 65, 70},
	})

	got := mustTransformer(t, filterGrid(t)).Denoise()
	if !got.Equal(want) {
		t.Errorf("Denoise:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestDenoiseEvenWindowTruncates(t *testing.T) {
	// Two-pixel image: every window holds both samples, and the median
	// of {10, 21} is 15, not 15.5 rounded.
	src := grayImage(t, [][]uint8{{10, 21}})
	want := grayImage(t, [][]uint8{{15, 15}})

	got := mustTransformer(t, src).Denoise()
	if !got.Equal(want) {
		t.Errorf("Denoise:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestDenoiseRemovesSpeckle(t *testing.T) {
	src := grayImage(t, [][]uint8{
		{50, 50, 50},
		{50, 255, 50},
		{50, 50, 50},
	})
	got := mustTransformer(t, src).Denoise()
	c, err := got.RGBAt(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if c != RGB(50, 50, 50) {
		t.Errorf("center after Denoise = %v, want %v", c, RGB(50, 50, 50))
	}
}

func TestWeather(t *testing.T) {
	want := grayImage(t, [][]uint8{
		{10, 10, 20},
		{10, 10, 20},
		{40, 40, 50},
	})

	got := mustTransformer(t, filterGrid(t)).Weather()
	if !got.Equal(want) {
		t.Errorf("Weather:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestWeatherChannelsIndependent(t *testing.T) {
	// The channel minima may come from different neighbors.
	src := mustImage(t, [][]Color{
		{RGB(10, 200, 0), RGB(200, 10, 0)},
	})
	want := mustImage(t, [][]Color{
		{RGB(10, 10, 0), RGB(10, 10, 0)},
	})

	got := mustTransformer(t, src).Weather()
	if !got.Equal(want) {
		t.Errorf("Weather:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestBoxPaint(t *testing.T) {
	src := filterGrid(t)

	t.Run("clipped blocks", func(t *testing.T) {
		got, err := mustTransformer(t, src).BoxPaint(2)
		if err != nil {
			t.Fatalf("BoxPaint: %v", err)
		}
		// The 2x2 block averages 30; the clipped right column and bottom
		// row average over only their own pixels.
		want := grayImage(t, [][]uint8{
			{30, 30, 45},
			{30, 30, 45},
			{75, 75, 90},
		})
		if !got.Equal(want) {
			t.Errorf("BoxPaint(2):\ngot:\n%v\nwant:\n%v", got, want)
		}
	})

	t.Run("block covers image", func(t *testing.T) {
		for _, size := range []int{3, 5} {
			got, err := mustTransformer(t, src).BoxPaint(size)
			if err != nil {
				t.Fatalf("BoxPaint(%d): %v", size, err)
			}
			want := grayImage(t, [][]uint8{
				{50, 50, 50},
				{50, 50, 50},
				{50, 50, 50},
			})
			if !got.Equal(want) {
				t.Errorf("BoxPaint(%d):\ngot:\n%v\nwant:\n%v", size, got, want)
			}
		}
	})

	t.Run("size one is identity", func(t *testing.T) {
		got, err := mustTransformer(t, src).BoxPaint(1)
		if err != nil {
			t.Fatalf("BoxPaint(1): %v", err)
		}
		if !got.Equal(src) {
			t.Error("BoxPaint(1) should reproduce the source")
		}
	})
}

func TestBoxPaintTruncates(t *testing.T) {
	src := grayImage(t, [][]uint8{{10, 21}})
	got, err := mustTransformer(t, src).BoxPaint(2)
	if err != nil {
		t.Fatal(err)
	}
	// (10 + 21) / 2 truncates to 15.
	want := grayImage(t, [][]uint8{{15, 15}})
	if !got.Equal(want) {
		t.Errorf("BoxPaint:\ngot:\n%v\nwant:\n%v", got, want)
	}
}

func TestBoxPaintInvalidSize(t *testing.T) {
	tr := mustTransformer(t, filterGrid(t))
	for _, size := range []int{0, -1} {
		if _, err := tr.BoxPaint(size); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("BoxPaint(%d) error = %v, want ErrInvalidDimension", size, err)
		}
	}
}

func TestFiltersProduceOpaqueOutput(t *testing.T) {
	src := mustImage(t, [][]Color{
		{ARGB(10, 100, 100, 100), ARGB(20, 50, 50, 50)},
	})
	tr := mustTransformer(t, src)

	boxed, err := tr.BoxPaint(2)
	if err != nil {
		t.Fatal(err)
	}
	for name, img := range map[string]*Image{
		"Denoise":  tr.Denoise(),
		"Weather":  tr.Weather(),
		"BoxPaint": boxed,
	} {
		c, err := img.RGBAt(0, 0)
		if err != nil {
			t.Fatal(err)
		}
		if c.Alpha() != 255 {
			t.Errorf("%s output alpha = %d, want 255", name, c.Alpha())
		}
	}
}
