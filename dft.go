package raster

import (
	"fmt"
	"math"
)

// Matrix is a fixed-size 2-D matrix of real numbers.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix allocates a zeroed rows-by-cols matrix.
// It returns ErrInvalidDimension if either dimension is not positive.
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d matrix", ErrInvalidDimension, rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at (row, col). Indices are trusted.
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.cols+col]
}

func (m *Matrix) set(row, col int, v float64) {
	m.data[row*m.cols+col] = v
}

// Equal reports dimension equality plus element-wise bitwise equality.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// DFTOutput pairs the amplitude and phase matrices produced by a spatial
// discrete Fourier transform. It is immutable once constructed.
type DFTOutput struct {
	amplitude, phase *Matrix
}

// NewDFTOutput pairs an amplitude matrix with a phase matrix.
// It returns ErrDimensionMismatch if their shapes differ, and ErrNilImage
// semantics do not apply here: nil matrices are rejected as a mismatch.
func NewDFTOutput(amplitude, phase *Matrix) (*DFTOutput, error) {
	if amplitude == nil || phase == nil ||
		amplitude.rows != phase.rows || amplitude.cols != phase.cols {
		return nil, fmt.Errorf("%w: amplitude and phase matrices", ErrDimensionMismatch)
	}
	return &DFTOutput{amplitude: amplitude, phase: phase}, nil
}

// Amplitude returns the amplitude matrix.
func (d *DFTOutput) Amplitude() *Matrix { return d.amplitude }

// Phase returns the phase matrix.
func (d *DFTOutput) Phase() *Matrix { return d.phase }

// Equal reports whether both amplitude and phase matrices are equal.
func (d *DFTOutput) Equal(other *DFTOutput) bool {
	return other != nil &&
		d.amplitude.Equal(other.amplitude) &&
		d.phase.Equal(other.phase)
}

// DFT computes the spatial discrete Fourier transform of the source's
// luminance channel. For every frequency pair (u, v) with u in [0, W)
// and v in [0, H):
//
//	Real(u,v) = sum_x sum_y cos(2*pi*(u*x/W + v*y/H)) * intensity(x,y)
//	Imag(u,v) = sum_x sum_y sin(2*pi*(u*x/W + v*y/H)) * intensity(x,y)
//
// with amplitude = sqrt(Real^2 + Imag^2) and phase = atan(Imag/Real).
// The amplitude and phase matrices are indexed At(u, v).
//
// The phase uses the single-quadrant arctangent of the raw ratio; when
// Real is zero the ratio is infinite or NaN and the phase is undefined.
// This is a known numerical limitation, not an error condition.
//
// The computation is the direct quadruple sum, O(W^2 * H^2); it is meant
// for small inputs and is deliberately not replaced by a fast transform.
func (t *Transformer) DFT() *DFTOutput {
	w, h := t.width, t.height

	// Luminance plane of the grayscale image; the rounded gray value, as
	// stored in the red channel, not the raw weighted sum.
	intensity := make([]float64, w*h)
	for row := range h {
		for col := range w {
			intensity[row*w+col] = float64(t.src.at(col, row).Gray().Red())
		}
	}

	amplitude := &Matrix{rows: w, cols: h, data: make([]float64, w*h)}
	phase := &Matrix{rows: w, cols: h, data: make([]float64, w*h)}

	for u := range w {
		for v := range h {
			var re, im float64
			for y := range h {
				for x := range w {
					arg := 2 * math.Pi * (float64(u*x)/float64(w) + float64(v*y)/float64(h))
					s, c := math.Sincos(arg)
					f := intensity[y*w+x]
					re += c * f
					im += s * f
				}
			}
			amplitude.set(u, v, math.Sqrt(re*re+im*im))
			phase.set(u, v, math.Atan(im/re))
		}
	}

	out, _ := NewDFTOutput(amplitude, phase)
	return out
}
