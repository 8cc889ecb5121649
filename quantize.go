package raster

import (
	"fmt"

	"github.com/soniakeys/quant"
	"github.com/soniakeys/quant/median"
)

// Quantize reduces the source to a palette of at most colors distinct
// colors using median-cut clustering, returning a new image with every
// pixel replaced by its palette entry. The output is fully opaque.
// It returns ErrInvalidDimension if colors < 1.
func (t *Transformer) Quantize(colors int) (*Image, error) {
	if colors < 1 {
		return nil, fmt.Errorf("%w: palette size %d", ErrInvalidDimension, colors)
	}
	var q quant.Quantizer = median.Quantizer(colors)
	return FromImage(q.Paletted(t.src.ToImage())), nil
}
