package convolve

import "github.com/nvr-ai/go-convolve/grid"

// DirectConvolver computes the spatial convolution pixel by pixel on
// the calling goroutine. It is the reference implementation the other
// strategies are measured against.
type DirectConvolver struct{}

// Convolve produces a new grid where every pixel is the clamped
// weighted sum of its in-bounds kernel neighborhood. The output buffer
// is freshly allocated; the algorithm never reads from the buffer it
// is writing into.
func (DirectConvolver) Convolve(g *grid.Grid[grid.RGBA], kernel *grid.Kernel) (*grid.Grid[grid.RGBA], error) {
	width := g.Width()
	height := g.Height()
	cells := make([]grid.RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[g.Index(x, y)] = convolveAt(g, kernel, x, y)
		}
	}
	return grid.FromCells(width, height, cells)
}
