package nn

import (
	"fmt"
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation y = x @ Wᵗ + b where:
//   - x is the input with shape [batch_size, in_features]
//   - W is the weight matrix with shape [out_features, in_features]
//   - b is the bias vector with shape [out_features]
//
// Weights are initialized with a Xavier-scaled normal distribution;
// biases start at zero. A rank-1 input is treated as a batch of one.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(784, 128, rng)
//	output := layer.Forward(input) // [32, 784] -> [32, 128]
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [out_features, in_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer.
//
// The generator drives weight initialization, so construction is
// deterministic given a seed.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weightShape := tensor.Shape{outFeatures, inFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape, rng))

	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes y = x @ Wᵗ + b.
//
// Accepts either a rank-1 vector of in_features elements (promoted to a
// batch of one) or a rank-2 batch [batch_size, in_features]. The bias is
// broadcast over the batch dimension; its backward rule sums the
// upstream gradient over that dimension. Panics on a feature-count
// mismatch.
func (l *Linear) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	if len(shape) == 1 {
		input = input.Reshape(tensor.Shape{1, l.inFeatures})
		shape = input.Shape()
	}
	if len(shape) != 2 {
		panic(fmt.Sprintf("nn: Linear.Forward expected rank-1 or rank-2 input, got shape %v", shape))
	}
	if shape[1] != l.inFeatures {
		panic(fmt.Sprintf("nn: Linear.Forward expected input with %d features, got %d", l.inFeatures, shape[1]))
	}

	// x @ Wᵗ: [batch, in] @ [in, out] = [batch, out]
	output := input.MatMul(l.weight.Tensor().Transpose())

	return addBias(output, l.bias.Tensor(), l.outFeatures)
}

// addBias adds a rank-1 bias to every row of a rank-2 tensor.
//
// The backward rule passes the upstream gradient through to the matmul
// output unchanged and sums it over the batch dimension for the bias.
func addBias(output, bias *tensor.Tensor, outFeatures int) *tensor.Tensor {
	batch := output.Shape()[0]
	data := make([]float64, batch*outFeatures)
	for i := 0; i < batch; i++ {
		for j := 0; j < outFeatures; j++ {
			data[i*outFeatures+j] = output.Data()[i*outFeatures+j] + bias.Data()[j]
		}
	}

	requiresGrad := output.RequiresGrad() || bias.RequiresGrad()
	var out *tensor.Tensor
	out = tensor.NewOp(data, output.Shape().Clone(), requiresGrad, []*tensor.Tensor{output, bias}, func() {
		if output.RequiresGrad() {
			for i := range output.Grad() {
				output.Grad()[i] += out.Grad()[i]
			}
		}
		if bias.RequiresGrad() {
			for i := 0; i < batch; i++ {
				for j := 0; j < outFeatures; j++ {
					bias.Grad()[j] += out.Grad()[i*outFeatures+j]
				}
			}
		}
	})
	return out
}

// Parameters returns the weight then the bias.
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// InFeatures returns the input feature count.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
