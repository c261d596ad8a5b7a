package convolve

import (
	"testing"

	"github.com/nvr-ai/go-convolve/grid"
)

func benchGrid(b *testing.B, w, h int) *grid.Grid[grid.RGBA] {
	b.Helper()
	g, err := grid.NewRandomRGBA(w, h)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func benchConvolver(b *testing.B, c Convolver, w, h int, kernel *grid.Kernel) {
	g := benchGrid(b, w, h)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Convolve(g, kernel); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDirect_256_g3(b *testing.B) {
	benchConvolver(b, DirectConvolver{}, 256, 256, grid.Gauss3())
}

func BenchmarkDirect_256_g7(b *testing.B) {
	benchConvolver(b, DirectConvolver{}, 256, 256, grid.Gauss7())
}

func BenchmarkParallel_256_g3(b *testing.B) {
	benchConvolver(b, ParallelConvolver{}, 256, 256, grid.Gauss3())
}

func BenchmarkParallel_256_g7(b *testing.B) {
	benchConvolver(b, ParallelConvolver{}, 256, 256, grid.Gauss7())
}

func BenchmarkFourier_256_g7(b *testing.B) {
	benchConvolver(b, NewFourierConvolver(), 256, 256, grid.Gauss7())
}

// BenchmarkFourier_256_g7_coldPlans rebuilds the plan cache every
// iteration to expose what caching saves on repeated applications.
func BenchmarkFourier_256_g7_coldPlans(b *testing.B) {
	g := benchGrid(b, 256, 256)
	kernel := grid.Gauss7()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NewFourierConvolver().Convolve(g, kernel); err != nil {
			b.Fatal(err)
		}
	}
}
