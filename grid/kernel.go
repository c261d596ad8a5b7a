package grid

import "github.com/pkg/errors"

// Kernel is a small odd-sized weight matrix convolved over a pixel
// grid. Odd dimensions guarantee a unique integer center tap; even
// dimensions have no defined center and are rejected at construction.
//
// The Gaussian presets sum to 1 so that a blur preserves overall
// brightness away from the borders. That sum-to-one property is a
// convention for blur kernels, not an invariant of the type: custom
// kernels may sum to anything, and convolution output is clamped
// regardless.
type Kernel struct {
	Grid[float32]
}

// NewKernel builds a kernel from a row-major weight table.
//
// Arguments:
// - width: Kernel width. Must be positive and odd.
// - height: Kernel height. Must be positive and odd.
// - weights: Row-major weights; len(weights) must equal width*height.
//
// Returns:
// - The kernel.
// - An error if a dimension is non-positive or even, or the weight
//   count does not match the dimensions.
func NewKernel(width, height int, weights []float32) (*Kernel, error) {
	if width%2 == 0 || height%2 == 0 {
		return nil, errors.Errorf("grid: kernel dimensions must be odd, got %dx%d", width, height)
	}
	g, err := FromCells(width, height, weights)
	if err != nil {
		return nil, errors.Wrap(err, "grid: invalid kernel")
	}
	return &Kernel{Grid: *g}, nil
}

// Radius returns the kernel's reach from its center tap along each
// axis: (width/2, height/2). Output pixels farther than the radius
// from every grid edge have their full kernel footprint in bounds.
func (k *Kernel) Radius() Point {
	return k.Center()
}

func mustKernel(width, height int, weights []float32) *Kernel {
	k, err := NewKernel(width, height, weights)
	if err != nil {
		panic(err)
	}
	return k
}

// Gauss3 returns the 3x3 discrete Gaussian (binomial) blur kernel.
// Its weights sum to 1.
func Gauss3() *Kernel {
	return mustKernel(3, 3, []float32{
		1.0 / 16, 2.0 / 16, 1.0 / 16,
		2.0 / 16, 4.0 / 16, 2.0 / 16,
		1.0 / 16, 2.0 / 16, 1.0 / 16,
	})
}

// Gauss5 returns the 5x5 discrete Gaussian (binomial) blur kernel.
// Its weights sum to 1.
func Gauss5() *Kernel {
	return mustKernel(5, 5, []float32{
		1.0 / 256, 4.0 / 256, 6.0 / 256, 4.0 / 256, 1.0 / 256,
		4.0 / 256, 16.0 / 256, 24.0 / 256, 16.0 / 256, 4.0 / 256,
		6.0 / 256, 24.0 / 256, 36.0 / 256, 24.0 / 256, 6.0 / 256,
		4.0 / 256, 16.0 / 256, 24.0 / 256, 16.0 / 256, 4.0 / 256,
		1.0 / 256, 4.0 / 256, 6.0 / 256, 4.0 / 256, 1.0 / 256,
	})
}

// Gauss7 returns the 7x7 discrete Gaussian (binomial) blur kernel.
// Its weights sum to 1.
func Gauss7() *Kernel {
	return mustKernel(7, 7, []float32{
		1.0 / 4096, 6.0 / 4096, 15.0 / 4096, 20.0 / 4096, 15.0 / 4096, 6.0 / 4096, 1.0 / 4096,
		6.0 / 4096, 36.0 / 4096, 90.0 / 4096, 120.0 / 4096, 90.0 / 4096, 36.0 / 4096, 6.0 / 4096,
		15.0 / 4096, 90.0 / 4096, 225.0 / 4096, 300.0 / 4096, 225.0 / 4096, 90.0 / 4096, 15.0 / 4096,
		20.0 / 4096, 120.0 / 4096, 300.0 / 4096, 400.0 / 4096, 300.0 / 4096, 120.0 / 4096, 20.0 / 4096,
		15.0 / 4096, 90.0 / 4096, 225.0 / 4096, 300.0 / 4096, 225.0 / 4096, 90.0 / 4096, 15.0 / 4096,
		6.0 / 4096, 36.0 / 4096, 90.0 / 4096, 120.0 / 4096, 90.0 / 4096, 36.0 / 4096, 6.0 / 4096,
		1.0 / 4096, 6.0 / 4096, 15.0 / 4096, 20.0 / 4096, 15.0 / 4096, 6.0 / 4096, 1.0 / 4096,
	})
}

// Box returns a size x size box-average kernel with uniform weights
// 1/(size*size). size must be positive and odd.
func Box(size int) (*Kernel, error) {
	if size <= 0 || size%2 == 0 {
		return nil, errors.Errorf("grid: box kernel size must be positive and odd, got %d", size)
	}
	weights := make([]float32, size*size)
	w := 1 / float32(size*size)
	for i := range weights {
		weights[i] = w
	}
	return NewKernel(size, size, weights)
}

// Identity returns the 1x1 kernel with weight 1. Convolving with it
// leaves any grid unchanged.
func Identity() *Kernel {
	return mustKernel(1, 1, []float32{1})
}

// Presets maps the preset names accepted by callers (the demo CLI in
// particular) to their constructors.
var Presets = map[string]func() *Kernel{
	"identity": Identity,
	"gauss3":   Gauss3,
	"gauss5":   Gauss5,
	"gauss7":   Gauss7,
}

// Preset returns the named preset kernel.
//
// Arguments:
// - name: One of "identity", "gauss3", "gauss5", "gauss7".
//
// Returns:
// - The kernel.
// - An error if the name is unknown.
func Preset(name string) (*Kernel, error) {
	ctor, ok := Presets[name]
	if !ok {
		return nil, errors.Errorf("grid: unknown kernel preset %q", name)
	}
	return ctor(), nil
}
