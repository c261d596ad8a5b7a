// Package render - adapts a pixel grid for output consumers that want
// standard library images: channel floats in [0, 1] are scaled to
// 8-bit levels, and each logical cell can be expanded into a square
// tile of device pixels for blocky upscaled display.
package render

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-convolve/grid"
)

// Image converts a pixel grid into an image.RGBA of the same
// dimensions, truncating each channel float to an 8-bit level.
func Image(g *grid.Grid[grid.RGBA]) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for ref := range g.Cells() {
		off := ref.Y*img.Stride + ref.X*4
		img.Pix[off+0] = uint8(ref.Cell.R * 255)
		img.Pix[off+1] = uint8(ref.Cell.G * 255)
		img.Pix[off+2] = uint8(ref.Cell.B * 255)
		img.Pix[off+3] = uint8(ref.Cell.A * 255)
	}
	return img
}

// Tiled converts a pixel grid into an image where every logical cell
// covers a tile x tile block of identical device pixels.
//
// Arguments:
// - g: The pixel grid.
// - tile: Edge length of each cell's pixel block. Must be >= 1.
//
// Returns:
// - The upscaled image (the plain conversion when tile is 1).
// - An error if tile is < 1.
func Tiled(g *grid.Grid[grid.RGBA], tile int) (image.Image, error) {
	if tile < 1 {
		return nil, errors.Errorf("render: tile size must be >= 1, got %d", tile)
	}
	img := Image(g)
	if tile == 1 {
		return img, nil
	}
	// Nearest-neighbor resampling at an integer factor replicates each
	// cell into an exact tile block.
	return resize.Resize(uint(g.Width()*tile), uint(g.Height()*tile), img, resize.NearestNeighbor), nil
}
