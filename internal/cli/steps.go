package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-raster"
)

// step is one transform in a pipeline recipe. Op selects the transform;
// the remaining fields parameterize the ops that need them.
type step struct {
	Op      string  `toml:"op"`
	Degrees float64 `toml:"degrees"` // rotate
	Size    int     `toml:"size"`    // boxpaint
	Colors  int     `toml:"colors"`  // quantize
	Box     string  `toml:"box"`     // clip, "left,top,right,bottom"
}

// runStep applies one transform step to img and returns the result.
func runStep(img *raster.Image, s step) (*raster.Image, error) {
	tr, err := raster.NewTransformer(img)
	if err != nil {
		return nil, err
	}
	switch s.Op {
	case "grayscale":
		return tr.Grayscale(), nil
	case "red":
		return tr.RedChannel(), nil
	case "mirror":
		return tr.Mirror(), nil
	case "negative":
		return tr.Negative(), nil
	case "posterize":
		return tr.Posterize(), nil
	case "denoise":
		return tr.Denoise(), nil
	case "weather":
		return tr.Weather(), nil
	case "rotate":
		return tr.Rotate(s.Degrees), nil
	case "boxpaint":
		return tr.BoxPaint(s.Size)
	case "quantize":
		return tr.Quantize(s.Colors)
	case "clip":
		box, err := parseBox(s.Box)
		if err != nil {
			return nil, err
		}
		return tr.Clip(box)
	case "":
		return nil, fmt.Errorf("step is missing an op")
	default:
		return nil, fmt.Errorf("unknown op %q", s.Op)
	}
}

// parseBox parses "left,top,right,bottom" into a raster.Rect.
func parseBox(spec string) (raster.Rect, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return raster.Rect{}, fmt.Errorf("clip box %q: want left,top,right,bottom", spec)
	}
	vals := make([]int, 4)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return raster.Rect{}, fmt.Errorf("clip box %q: %w", spec, err)
		}
		vals[i] = v
	}
	return raster.Rect{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}, nil
}
