// Package convolve - implements three interchangeable strategies for
// convolving an RGBA grid with a weight kernel: a single-threaded
// spatial pass, a data-parallel spatial pass, and a frequency-domain
// pass built on an FFT.
//
// The two spatial strategies are numerically identical; they share the
// skip-tap boundary rule, under which kernel taps falling outside the
// grid contribute nothing and the remaining weights are not
// renormalized. The frequency-domain strategy computes a zero-padded
// linear convolution instead, so it agrees with the spatial strategies
// only in the interior (farther than the kernel radius from every
// edge) and diverges near the borders. That divergence is a documented
// property of the strategy set, not a defect; see the package tests.
package convolve

import (
	"github.com/pkg/errors"

	"github.com/nvr-ai/go-convolve/grid"
)

// Strategy identifies one of the closed set of convolution strategies.
type Strategy int

const (
	// Direct computes the spatial convolution on a single goroutine.
	Direct Strategy = iota
	// Parallel computes the spatial convolution across row chunks.
	Parallel
	// Fourier computes a zero-padded linear convolution via FFT.
	Fourier
)

// String returns the strategy's CLI-facing name.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Parallel:
		return "parallel"
	case Fourier:
		return "fourier"
	default:
		return "unknown"
	}
}

// ParseStrategy maps a strategy name to its tag.
//
// Arguments:
// - name: One of "direct", "parallel", "fourier".
//
// Returns:
// - The strategy tag.
// - An error if the name is unknown.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "direct":
		return Direct, nil
	case "parallel":
		return Parallel, nil
	case "fourier":
		return Fourier, nil
	default:
		return 0, errors.Errorf("convolve: unknown strategy %q", name)
	}
}

// Convolver is the single capability all strategies implement:
// a pure transformation of one pixel grid into a freshly allocated
// grid of identical dimensions. Implementations are safe to swap
// without changing caller code and never mutate their inputs.
type Convolver interface {
	Convolve(g *grid.Grid[grid.RGBA], kernel *grid.Kernel) (*grid.Grid[grid.RGBA], error)
}

// New returns the convolver for a strategy tag.
//
// Arguments:
// - s: The strategy tag.
//
// Returns:
// - The convolver. The Fourier convolver carries a plan cache and is
//   worth reusing across calls; the spatial convolvers are stateless.
// - An error if the tag is not one of the closed set.
func New(s Strategy) (Convolver, error) {
	switch s {
	case Direct:
		return DirectConvolver{}, nil
	case Parallel:
		return ParallelConvolver{}, nil
	case Fourier:
		return NewFourierConvolver(), nil
	default:
		return nil, errors.Errorf("convolve: unknown strategy %d", s)
	}
}

// convolveAt accumulates the weighted neighborhood sum for one output
// pixel, channels independent, and clamps the result. Out-of-range
// taps are skipped by the grid's tap iterator, so near the border the
// retained weights of a normalized kernel no longer sum to 1 and the
// output darkens; that edge artifact is part of the spatial
// strategies' contract.
func convolveAt(g *grid.Grid[grid.RGBA], kernel *grid.Kernel, x, y int) grid.RGBA {
	var acc grid.RGBA
	for tap := range g.Taps(kernel, x, y) {
		acc.R += tap.Cell.R * tap.Weight
		acc.G += tap.Cell.G * tap.Weight
		acc.B += tap.Cell.B * tap.Weight
		acc.A += tap.Cell.A * tap.Weight
	}
	return acc.Clamp()
}
