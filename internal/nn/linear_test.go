package nn

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darv-ml/darv/internal/tensor"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestLinear_Shapes(t *testing.T) {
	layer := NewLinear(3, 2, newRNG())

	assert.Equal(t, 3, layer.InFeatures())
	assert.Equal(t, 2, layer.OutFeatures())

	params := layer.Parameters()
	require.Len(t, params, 2)
	assert.Equal(t, "weight", params[0].Name())
	assert.True(t, tensor.Shape{2, 3}.Equal(params[0].Tensor().Shape()))
	assert.Equal(t, "bias", params[1].Name())
	assert.True(t, tensor.Shape{2}.Equal(params[1].Tensor().Shape()))
}

func TestLinear_BiasStartsAtZero(t *testing.T) {
	layer := NewLinear(4, 3, newRNG())

	bias := layer.Parameters()[1].Tensor()
	for _, v := range bias.Data() {
		assert.Zero(t, v)
	}
}

func TestLinear_Forward(t *testing.T) {
	layer := NewLinear(2, 2, newRNG())

	// Overwrite the random initialization with known values.
	w := layer.Parameters()[0].Tensor()
	copy(w.Data(), []float64{1, 2, 3, 4}) // W = [[1, 2], [3, 4]]
	b := layer.Parameters()[1].Tensor()
	copy(b.Data(), []float64{10, 20})

	input, err := tensor.New([]float64{1, 1, 2, 0}, tensor.Shape{2, 2}, false)
	require.NoError(t, err)

	output := layer.Forward(input)
	require.True(t, tensor.Shape{2, 2}.Equal(output.Shape()))

	// Row 1: [1, 1] @ W^T + b = [1+2+10, 3+4+20] = [13, 27]
	// Row 2: [2, 0] @ W^T + b = [2+10, 6+20] = [12, 26]
	assert.InDelta(t, 13, output.At(0, 0), 1e-9)
	assert.InDelta(t, 27, output.At(0, 1), 1e-9)
	assert.InDelta(t, 12, output.At(1, 0), 1e-9)
	assert.InDelta(t, 26, output.At(1, 1), 1e-9)
}

func TestLinear_ForwardPromotesVector(t *testing.T) {
	layer := NewLinear(3, 2, newRNG())

	input, err := tensor.New([]float64{1, 2, 3}, tensor.Shape{3}, false)
	require.NoError(t, err)

	output := layer.Forward(input)
	assert.True(t, tensor.Shape{1, 2}.Equal(output.Shape()))
}

func TestLinear_ForwardPanicsOnFeatureMismatch(t *testing.T) {
	layer := NewLinear(3, 2, newRNG())

	input := tensor.Zeros(tensor.Shape{4, 4}, false)
	assert.Panics(t, func() { layer.Forward(input) })
}

func TestLinear_ForwardPanicsOnRank3(t *testing.T) {
	layer := NewLinear(3, 2, newRNG())

	input := tensor.Zeros(tensor.Shape{2, 2, 3}, false)
	assert.Panics(t, func() { layer.Forward(input) })
}

func TestLinear_Backward(t *testing.T) {
	layer := NewLinear(2, 1, newRNG())

	w := layer.Parameters()[0].Tensor()
	copy(w.Data(), []float64{2, 3})
	b := layer.Parameters()[1].Tensor()
	copy(b.Data(), []float64{1})

	input, err := tensor.New([]float64{4, 5}, tensor.Shape{1, 2}, false)
	require.NoError(t, err)

	// y = 2*4 + 3*5 + 1 = 24
	output := layer.Forward(input)
	assert.InDelta(t, 24, output.Data()[0], 1e-9)

	output.Backward()

	// dy/dW = input, dy/db = 1.
	assert.InDelta(t, 4, w.Grad()[0], 1e-9)
	assert.InDelta(t, 5, w.Grad()[1], 1e-9)
	assert.InDelta(t, 1, b.Grad()[0], 1e-9)
}

func TestLinear_BiasGradientSumsOverBatch(t *testing.T) {
	layer := NewLinear(2, 2, newRNG())
	b := layer.Parameters()[1].Tensor()

	input := tensor.Ones(tensor.Shape{5, 2}, false)
	layer.Forward(input).Sum().Backward()

	// Five rows each contribute a unit gradient to every bias element.
	assert.InDelta(t, 5, b.Grad()[0], 1e-9)
	assert.InDelta(t, 5, b.Grad()[1], 1e-9)
}

func TestXavier_Scale(t *testing.T) {
	fanIn, fanOut := 100, 50
	w := Xavier(fanIn, fanOut, tensor.Shape{fanOut, fanIn}, newRNG())

	variance := 0.0
	for _, v := range w.Data() {
		variance += v * v
	}
	variance /= float64(w.NumElements())

	want := 2.0 / float64(fanIn+fanOut)
	assert.InDelta(t, want, variance, want/4, "sample variance should match 2/(fanIn+fanOut)")
	assert.True(t, w.RequiresGrad())
	assert.False(t, math.IsNaN(w.Data()[0]))
}
