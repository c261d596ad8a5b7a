package grid

import "github.com/chewxy/math32"

// RGBA is a linear-light pixel cell. Channels are logically confined
// to [0, 1] after any convolution; random initialization and
// intermediate accumulation may transiently exceed that range, which
// is why every strategy clamps on output.
type RGBA struct {
	R float32
	G float32
	B float32
	A float32
}

// Clamp returns the pixel with every channel clamped to [0, 1].
// Clamping is unconditional on convolution output, so a malformed
// kernel (one that does not sum to 1) can produce visually wrong
// pixels but never out-of-gamut ones.
func (c RGBA) Clamp() RGBA {
	return RGBA{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: clamp01(c.A),
	}
}

func clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
