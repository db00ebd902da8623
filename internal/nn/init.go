package nn

import (
	"math"
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// Xavier initialization for weight matrices.
//
// Draws from a zero-mean normal distribution scaled by
// sqrt(2 / (fan_in + fan_out)), which keeps activation variance roughly
// constant across layers.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	std := math.Sqrt(2.0 / float64(fanIn+fanOut))
	t := tensor.Randn(shape, true, rng)
	data := t.Data()
	for i := range data {
		data[i] *= std
	}
	return t
}

// Zeros creates a trainable zero-filled tensor.
// This is the standard bias initialization.
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return tensor.Zeros(shape, true)
}

// Ones creates a trainable one-filled tensor.
// This is the standard initialization for normalization scale factors.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return tensor.Ones(shape, true)
}
