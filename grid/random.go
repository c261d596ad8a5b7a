package grid

import "math/rand/v2"

// randomSeed is the fixed ChaCha8 seed for the demo/test fill. A zero
// seed keeps repeated initializations reproducible across runs and
// platforms.
var randomSeed [32]byte

// NewRandomRGBA builds a pixel grid filled with deterministic
// pseudo-random colors. Each channel is drawn as an 8-bit level and
// scaled into [0, 1); alpha is fully opaque. Two grids built with the
// same dimensions are element-wise identical.
//
// Arguments:
// - width: Number of columns. Must be > 0.
// - height: Number of rows. Must be > 0.
//
// Returns:
// - The filled grid.
// - An error if either dimension is not strictly positive.
func NewRandomRGBA(width, height int) (*Grid[RGBA], error) {
	g, err := New[RGBA](width, height)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewChaCha8(randomSeed))
	for i := range g.cells {
		g.cells[i] = RGBA{
			R: float32(rng.IntN(255)) / 255.0,
			G: float32(rng.IntN(255)) / 255.0,
			B: float32(rng.IntN(255)) / 255.0,
			A: 1.0,
		}
	}
	return g, nil
}
