package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterIndexing(t *testing.T) {
	r, err := NewRaster(4, 3)
	require.NoError(t, err)

	assert.Equal(t, 0, r.Index(0, 0))
	assert.Equal(t, 3, r.Index(3, 0))
	assert.Equal(t, 4, r.Index(0, 1))
	assert.Equal(t, 11, r.Index(3, 2))
	assert.Equal(t, 12, r.Len())
}

func TestRasterInside(t *testing.T) {
	r, err := NewRaster(4, 3)
	require.NoError(t, err)

	assert.True(t, r.Inside(0, 0))
	assert.True(t, r.Inside(3, 2))
	assert.False(t, r.Inside(-1, 0))
	assert.False(t, r.Inside(0, -1))
	assert.False(t, r.Inside(4, 0))
	assert.False(t, r.Inside(0, 3))
}

func TestRasterCenterFloorDivision(t *testing.T) {
	odd, err := NewRaster(5, 7)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 2, Y: 3}, odd.Center())

	even, err := NewRaster(4, 6)
	require.NoError(t, err)
	assert.Equal(t, Point{X: 2, Y: 3}, even.Center())
}

func TestRasterRejectsNonPositiveDimensions(t *testing.T) {
	_, err := NewRaster(0, 3)
	assert.Error(t, err)
	_, err = NewRaster(3, 0)
	assert.Error(t, err)
	_, err = NewRaster(-1, -1)
	assert.Error(t, err)
}

func TestRasterPositionsRowMajor(t *testing.T) {
	r, err := NewRaster(3, 2)
	require.NoError(t, err)

	var points []Point
	var indices []int
	for p, i := range r.Positions() {
		points = append(points, p)
		indices = append(indices, i)
	}
	assert.Equal(t, []Point{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
	}, points)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, indices)
}

func TestFromCellsLengthMismatch(t *testing.T) {
	_, err := FromCells(2, 2, []float32{1, 2, 3})
	assert.Error(t, err)
}

func TestGridAtSetRoundTrip(t *testing.T) {
	g, err := New[float32](3, 3)
	require.NoError(t, err)

	g.Set(1, 2, 0.5)
	assert.Equal(t, float32(0.5), g.At(1, 2))
	assert.Equal(t, float32(0), g.At(0, 0))
}

func TestGridAtPanicsOutOfRange(t *testing.T) {
	g, err := New[float32](3, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { g.At(3, 0) })
	assert.Panics(t, func() { g.At(0, -1) })
	assert.Panics(t, func() { g.Set(-1, 0, 1) })
}

func TestCellsVisitsEveryCellOnceRowMajor(t *testing.T) {
	g, err := New[int](3, 2)
	require.NoError(t, err)
	for p, i := range g.Raster().Positions() {
		g.Set(p.X, p.Y, i*10)
	}

	var refs []Ref[int]
	for ref := range g.Cells() {
		refs = append(refs, ref)
	}
	require.Len(t, refs, 6)
	for i, ref := range refs {
		assert.Equal(t, i, ref.Index)
		assert.Equal(t, i%3, ref.X)
		assert.Equal(t, i/3, ref.Y)
		assert.Equal(t, i*10, ref.Cell)
	}

	// The sequence is restartable: a second full pass sees the same cells.
	count := 0
	for range g.Cells() {
		count++
	}
	assert.Equal(t, 6, count)
}

func TestTapsFullFootprintInInterior(t *testing.T) {
	g, err := NewRandomRGBA(5, 5)
	require.NoError(t, err)
	kernel := Gauss3()

	var taps []Tap[RGBA]
	for tap := range g.Taps(kernel, 2, 2) {
		taps = append(taps, tap)
	}
	require.Len(t, taps, 9)

	// Row-major kernel order, and each tap reads the source cell under it.
	assert.Equal(t, 0, taps[0].KX)
	assert.Equal(t, 0, taps[0].KY)
	assert.Equal(t, g.Index(1, 1), taps[0].Index)
	assert.Equal(t, 2, taps[8].KX)
	assert.Equal(t, 2, taps[8].KY)
	assert.Equal(t, g.Index(3, 3), taps[8].Index)
	assert.Equal(t, kernel.At(1, 1), taps[4].Weight)
}

func TestTapsSkipOutOfRangeSources(t *testing.T) {
	g, err := NewRandomRGBA(5, 5)
	require.NoError(t, err)
	kernel := Gauss3()

	// At the top-left corner only the 2x2 in-bounds quadrant survives.
	var taps []Tap[RGBA]
	for tap := range g.Taps(kernel, 0, 0) {
		taps = append(taps, tap)
	}
	require.Len(t, taps, 4)
	for _, tap := range taps {
		assert.GreaterOrEqual(t, tap.KX, 1)
		assert.GreaterOrEqual(t, tap.KY, 1)
	}

	// On an edge a full kernel column is dropped.
	taps = taps[:0]
	for tap := range g.Taps(kernel, 0, 2) {
		taps = append(taps, tap)
	}
	assert.Len(t, taps, 6)
}
