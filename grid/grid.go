package grid

import (
	"fmt"
	"iter"

	"github.com/pkg/errors"
)

// Grid is a dense 2D buffer of cells stored in row-major order. It is
// generic over the cell type: pixel grids use Grid[RGBA], kernels use
// Grid[float32]. The grid exclusively owns its cell slice; convolution
// strategies always produce a wholly new grid rather than mutating an
// input in place, because every output cell depends on a neighborhood
// of input cells.
type Grid[Cell any] struct {
	raster Raster
	cells  []Cell
}

// Ref is one cell visited during a traversal: its coordinates, its
// flat row-major index, and the cell value.
type Ref[Cell any] struct {
	// X is the column coordinate.
	X int
	// Y is the row coordinate.
	Y int
	// Index is the flat row-major index, Y*width + X.
	Index int
	// Cell is the cell value at (X, Y).
	Cell Cell
}

// Tap is one kernel tap visited over a grid position: the tap's
// coordinates within the kernel, the source cell it lands on, and the
// tap's weight. Taps whose source coordinate falls outside the grid
// are never produced.
type Tap[Cell any] struct {
	// KX is the tap's column within the kernel.
	KX int
	// KY is the tap's row within the kernel.
	KY int
	// Index is the flat index of the source cell within the grid.
	Index int
	// Cell is the source cell value.
	Cell Cell
	// Weight is the kernel weight at (KX, KY).
	Weight float32
}

// New allocates a zero-valued grid of the given dimensions.
//
// Arguments:
// - width: Number of columns. Must be > 0.
// - height: Number of rows. Must be > 0.
//
// Returns:
// - The grid.
// - An error if either dimension is not strictly positive.
func New[Cell any](width, height int) (*Grid[Cell], error) {
	raster, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	return &Grid[Cell]{
		raster: raster,
		cells:  make([]Cell, raster.Len()),
	}, nil
}

// FromCells builds a grid that takes ownership of the given row-major
// cell slice.
//
// Arguments:
// - width: Number of columns. Must be > 0.
// - height: Number of rows. Must be > 0.
// - cells: Row-major cell values; len(cells) must equal width*height.
//
// Returns:
// - The grid.
// - An error if the dimensions are invalid or the slice length does
//   not match them.
func FromCells[Cell any](width, height int, cells []Cell) (*Grid[Cell], error) {
	raster, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	if len(cells) != raster.Len() {
		return nil, errors.Errorf("grid: cell count %d does not match %dx%d raster", len(cells), width, height)
	}
	return &Grid[Cell]{raster: raster, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid[Cell]) Width() int { return g.raster.Width }

// Height returns the number of rows.
func (g *Grid[Cell]) Height() int { return g.raster.Height }

// Raster returns the grid's raster.
func (g *Grid[Cell]) Raster() Raster { return g.raster }

// Center returns the raster's floor-division center.
func (g *Grid[Cell]) Center() Point { return g.raster.Center() }

// Index returns the flat row-major index of (x, y).
func (g *Grid[Cell]) Index(x, y int) int { return g.raster.Index(x, y) }

// At returns the cell at (x, y). The coordinate must satisfy
// 0 <= x < Width and 0 <= y < Height; violating that is a programming
// error, not a recoverable condition, so At fails loudly.
func (g *Grid[Cell]) At(x, y int) Cell {
	g.check(x, y)
	return g.cells[g.raster.Index(x, y)]
}

// Set stores a cell at (x, y), with the same bounds contract as At.
func (g *Grid[Cell]) Set(x, y int, cell Cell) {
	g.check(x, y)
	g.cells[g.raster.Index(x, y)] = cell
}

func (g *Grid[Cell]) check(x, y int) {
	if !g.raster.Inside(x, y) {
		panic(fmt.Sprintf("grid: coordinate (%d,%d) out of range for %dx%d raster", x, y, g.raster.Width, g.raster.Height))
	}
}

// Cells yields every cell of the grid exactly once, in row-major
// order. The sequence is finite and restartable, so it can be ranged
// over repeatedly and composed without the grid handing out interior
// pointers.
func (g *Grid[Cell]) Cells() iter.Seq[Ref[Cell]] {
	return func(yield func(Ref[Cell]) bool) {
		for y := 0; y < g.raster.Height; y++ {
			for x := 0; x < g.raster.Width; x++ {
				index := g.raster.Index(x, y)
				if !yield(Ref[Cell]{X: x, Y: y, Index: index, Cell: g.cells[index]}) {
					return
				}
			}
		}
	}
}

// Taps yields the kernel's taps over grid position (x, y) in row-major
// kernel order. Tap (kx, ky) reads the source coordinate
// (x + kx - center.X, y + ky - center.Y); taps whose source falls
// outside the raster are skipped entirely, not clamped, and the
// remaining weights are not renormalized. Every convolution strategy
// that samples spatially must go through this rule so that their
// outputs agree bit for bit.
func (g *Grid[Cell]) Taps(kernel *Kernel, x, y int) iter.Seq[Tap[Cell]] {
	return func(yield func(Tap[Cell]) bool) {
		kc := kernel.Center()
		for ky := 0; ky < kernel.Height(); ky++ {
			for kx := 0; kx < kernel.Width(); kx++ {
				sx := x + kx - kc.X
				sy := y + ky - kc.Y
				if !g.raster.Inside(sx, sy) {
					continue
				}
				index := g.raster.Index(sx, sy)
				tap := Tap[Cell]{
					KX:     kx,
					KY:     ky,
					Index:  index,
					Cell:   g.cells[index],
					Weight: kernel.At(kx, ky),
				}
				if !yield(tap) {
					return
				}
			}
		}
	}
}
