package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kernelWeightSum(k *Kernel) float64 {
	var sum float64
	for ref := range k.Cells() {
		sum += float64(ref.Cell)
	}
	return sum
}

func TestGaussianPresetsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, kernelWeightSum(Gauss3()), 1e-6)
	assert.InDelta(t, 1.0, kernelWeightSum(Gauss5()), 1e-6)
	assert.InDelta(t, 1.0, kernelWeightSum(Gauss7()), 1e-6)
}

func TestPresetDimensions(t *testing.T) {
	for name, want := range map[string]int{"identity": 1, "gauss3": 3, "gauss5": 5, "gauss7": 7} {
		k, err := Preset(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, k.Width(), name)
		assert.Equal(t, want, k.Height(), name)
	}
}

func TestPresetUnknownName(t *testing.T) {
	_, err := Preset("sobel")
	assert.Error(t, err)
}

func TestNewKernelRejectsEvenDimensions(t *testing.T) {
	_, err := NewKernel(2, 3, make([]float32, 6))
	assert.Error(t, err)
	_, err = NewKernel(3, 4, make([]float32, 12))
	assert.Error(t, err)
	_, err = NewKernel(0, 1, nil)
	assert.Error(t, err)
}

func TestNewKernelRejectsWeightCountMismatch(t *testing.T) {
	_, err := NewKernel(3, 3, make([]float32, 8))
	assert.Error(t, err)
}

func TestNewKernelCustomOddTable(t *testing.T) {
	k, err := NewKernel(3, 1, []float32{0.25, 0.5, 0.25})
	require.NoError(t, err)
	assert.Equal(t, Point{X: 1, Y: 0}, k.Center())
	assert.Equal(t, float32(0.5), k.At(1, 0))
}

func TestKernelCenterAndRadius(t *testing.T) {
	k := Gauss5()
	assert.Equal(t, Point{X: 2, Y: 2}, k.Center())
	assert.Equal(t, Point{X: 2, Y: 2}, k.Radius())

	assert.Equal(t, Point{X: 0, Y: 0}, Identity().Center())
}

func TestBoxKernel(t *testing.T) {
	k, err := Box(3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, kernelWeightSum(k), 1e-6)
	assert.InDelta(t, 1.0/9.0, float64(k.At(0, 0)), 1e-7)

	_, err = Box(4)
	assert.Error(t, err)
	_, err = Box(0)
	assert.Error(t, err)
}
