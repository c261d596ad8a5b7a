package convolve

import (
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/nvr-ai/go-convolve/grid"
)

// FourierConvolver computes a true linear convolution in the frequency
// domain. The grid and kernel are zero-padded to
// (gridW+kernelW-1) x (gridH+kernelH-1), transformed, multiplied
// pointwise, and transformed back; the result is re-centered on the
// original raster by reading at an offset of the kernel center.
//
// Zero padding is a different boundary treatment from the spatial
// strategies' skip-tap rule, so outputs within the kernel radius of an
// edge are expected to diverge from DirectConvolver and agree only in
// the interior.
//
// Transform plans depend on the padded size but not on the data, so
// the convolver caches them per size: repeated calls with the same
// grid and kernel dimensions skip plan construction entirely. The
// cached plans carry scratch storage, so a FourierConvolver is meant
// to be reused from one goroutine at a time, matching the strategy's
// single-threaded execution model.
type FourierConvolver struct {
	mu    sync.Mutex
	plans map[int]*fourier.CmplxFFT
}

// NewFourierConvolver returns a convolver with an empty plan cache.
func NewFourierConvolver() *FourierConvolver {
	return &FourierConvolver{plans: make(map[int]*fourier.CmplxFFT)}
}

// plan returns the cached transform plan for length n, building it on
// first use.
func (c *FourierConvolver) plan(n int) *fourier.CmplxFFT {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.plans[n]
	if !ok {
		p = fourier.NewCmplxFFT(n)
		c.plans[n] = p
	}
	return p
}

// Convolve runs the padded frequency-domain convolution and returns a
// new grid of the input's dimensions. The 2D transform is expressed as
// one flattened 1-D transform over the padded raster, which is
// equivalent to a 2D linear convolution because each padded row leaves
// room for the kernel width.
func (c *FourierConvolver) Convolve(g *grid.Grid[grid.RGBA], kernel *grid.Kernel) (*grid.Grid[grid.RGBA], error) {
	gridW, gridH := g.Width(), g.Height()
	kernelW, kernelH := kernel.Width(), kernel.Height()
	paddedW := gridW + kernelW - 1
	paddedH := gridH + kernelH - 1
	// Grid and kernel constructors enforce positive dimensions, but a
	// zero padded size would make transform planning undefined, so it
	// is rejected here rather than trusted.
	if paddedW <= 0 || paddedH <= 0 {
		return nil, errors.Errorf("convolve: invalid padded size %dx%d", paddedW, paddedH)
	}
	n := paddedW * paddedH

	start := time.Now()
	plan := c.plan(n)
	slog.Debug("fourier plan ready", "padded_width", paddedW, "padded_height", paddedH, "elapsed", time.Since(start))

	// One zero-initialized padded buffer per color channel plus one
	// for the kernel, each filled in its top-left corner.
	var channels [4][]complex128
	for i := range channels {
		channels[i] = make([]complex128, n)
	}
	kernelBuf := make([]complex128, n)

	for ref := range g.Cells() {
		i := ref.Y*paddedW + ref.X
		channels[0][i] = complex(float64(ref.Cell.R), 0)
		channels[1][i] = complex(float64(ref.Cell.G), 0)
		channels[2][i] = complex(float64(ref.Cell.B), 0)
		channels[3][i] = complex(float64(ref.Cell.A), 0)
	}
	for ref := range kernel.Cells() {
		kernelBuf[ref.Y*paddedW+ref.X] = complex(float64(ref.Cell), 0)
	}

	start = time.Now()
	for i := range channels {
		channels[i] = plan.Coefficients(nil, channels[i])
	}
	kernelFreq := plan.Coefficients(nil, kernelBuf)
	slog.Debug("forward transforms done", "elapsed", time.Since(start))

	// Pointwise complex multiplication applies the convolution theorem
	// position by position.
	for i := 0; i < n; i++ {
		f := kernelFreq[i]
		channels[0][i] *= f
		channels[1][i] *= f
		channels[2][i] *= f
		channels[3][i] *= f
	}

	start = time.Now()
	for i := range channels {
		channels[i] = plan.Sequence(nil, channels[i])
	}
	slog.Debug("inverse transforms done", "elapsed", time.Since(start))

	// Reading at an offset of the kernel center re-centers the padded
	// result on the original raster. The inverse transform is
	// unnormalized, so the real part is divided by the padded length.
	kc := kernel.Center()
	scale := 1 / float64(n)
	cells := make([]grid.RGBA, gridW*gridH)
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			i := (y+kc.Y)*paddedW + (x + kc.X)
			cells[y*gridW+x] = grid.RGBA{
				R: float32(real(channels[0][i]) * scale),
				G: float32(real(channels[1][i]) * scale),
				B: float32(real(channels[2][i]) * scale),
				A: float32(real(channels[3][i]) * scale),
			}.Clamp()
		}
	}
	return grid.FromCells(gridW, gridH, cells)
}
