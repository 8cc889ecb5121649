package raster

import (
	"fmt"
	"math"
)

// CosineSimilarity scores how alike two equally-sized images are, in
// [0, 1]. Both images are converted to grayscale and their intensity
// values flattened row-major into vectors v1 and v2; the score is
//
//	sum |v1[i] * v2[i]| / (||v1|| * ||v2||)
//
// Intensities are non-negative, so the absolute-valued dot product
// equals the plain dot product. Two all-zero (black) images score 1.0;
// if exactly one image is all black the score is 0.0.
//
// It returns ErrNilImage if either image is nil and ErrDimensionMismatch
// if the dimensions differ.
func CosineSimilarity(a, b *Image) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%w: similarity operand", ErrNilImage)
	}
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return 0, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}

	w, h := a.Width(), a.Height()
	buf := getVecBuf(w * h)
	defer putVecBuf(buf)

	for row := range h {
		for col := range w {
			i := row*w + col
			buf.a[i] = float64(a.at(col, row).Gray().Red())
			buf.b[i] = float64(b.at(col, row).Gray().Red())
		}
	}

	dot := dotProduct(buf.a, buf.b)
	normA := dotProduct(buf.a, buf.a)
	normB := dotProduct(buf.b, buf.b)

	switch {
	case normA == 0 && normB == 0:
		return 1, nil
	case normA == 0 || normB == 0:
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
