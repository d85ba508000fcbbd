package raster

import "errors"

// Errors reported by the core. All are returned synchronously by the
// operation that detected them; nothing is retried internally.
var (
	// ErrInvalidDimension is returned when a canvas is created with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("raster: canvas dimensions must be positive")

	// ErrInvalidPrimitive is returned when a primitive is malformed:
	// a polygon with fewer than three vertices, or any non-finite
	// coordinate. The offending draw writes nothing further; pixels
	// already written by the same call stay written.
	ErrInvalidPrimitive = errors.New("raster: invalid primitive")
)
