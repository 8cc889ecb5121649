package raster

import "errors"

var (
	ErrInvalidDimension  = errors.New("raster: invalid dimension")
	ErrNilImage          = errors.New("raster: nil image")
	ErrIndexOutOfRange   = errors.New("raster: pixel index out of range")
	ErrRegionOutOfBounds = errors.New("raster: region out of bounds")
	ErrDimensionMismatch = errors.New("raster: image dimensions do not match")
)
