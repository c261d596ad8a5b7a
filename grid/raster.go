// Package grid - provides the dense 2D cell containers shared by every
// convolution strategy: a row-major Raster indexing scheme, a generic
// Grid over any cell type, RGBA pixel cells, and odd-sized weight
// kernels with precomputed Gaussian presets.
package grid

import (
	"iter"

	"github.com/pkg/errors"
)

// Point is an integer 2D coordinate, used for raster positions and
// kernel centers.
type Point struct {
	// X is the column coordinate.
	X int
	// Y is the row coordinate.
	Y int
}

// Raster describes the dimensions and row-major indexing scheme shared
// by every 2D buffer in this module. Both dimensions are always
// strictly positive for a Raster obtained through NewRaster.
type Raster struct {
	// Width is the number of columns.
	Width int
	// Height is the number of rows.
	Height int
}

// NewRaster validates the dimensions and returns a Raster.
//
// Arguments:
// - width: Number of columns. Must be > 0.
// - height: Number of rows. Must be > 0.
//
// Returns:
// - The Raster.
// - An error if either dimension is not strictly positive.
func NewRaster(width, height int) (Raster, error) {
	if width <= 0 || height <= 0 {
		return Raster{}, errors.Errorf("grid: raster dimensions must be positive, got %dx%d", width, height)
	}
	return Raster{Width: width, Height: height}, nil
}

// Index returns the flat row-major index of (x, y): y*Width + x.
// The coordinate is not bounds-checked here; use Inside first when the
// coordinate may fall outside the raster.
func (r Raster) Index(x, y int) int {
	return y*r.Width + x
}

// Inside reports whether (x, y) lies within the raster bounds.
func (r Raster) Inside(x, y int) bool {
	return x >= 0 && x < r.Width && y >= 0 && y < r.Height
}

// Center returns the raster's geometric center using floor division.
// For odd dimensions this is exactly the middle index, which is the
// property kernel alignment relies on.
func (r Raster) Center() Point {
	return Point{X: r.Width / 2, Y: r.Height / 2}
}

// Len returns the total cell count, Width*Height.
func (r Raster) Len() int {
	return r.Width * r.Height
}

// Positions yields every (point, index) pair of the raster exactly
// once, in row-major order. The sequence is finite and restartable.
func (r Raster) Positions() iter.Seq2[Point, int] {
	return func(yield func(Point, int) bool) {
		for y := 0; y < r.Height; y++ {
			for x := 0; x < r.Width; x++ {
				if !yield(Point{X: x, Y: y}, r.Index(x, y)) {
					return
				}
			}
		}
	}
}
