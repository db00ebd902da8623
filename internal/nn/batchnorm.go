package nn

import (
	"fmt"
	"math"

	"github.com/darv-ml/darv/internal/tensor"
)

// BatchNorm normalizes activations per feature.
//
// The layer carries a learnable per-feature scale (gamma, initialized to
// one) and shift (beta, initialized to zero), plus non-learnable running
// mean and variance maintained as exponential moving averages. In
// training mode the current batch's biased, epsilon-stabilized
// statistics normalize the input and update the running statistics; in
// inference mode the running statistics alone are used.
//
// Gradient flow: the backward rule reaches gamma and beta only. The
// normalization arithmetic itself is not differentiated, so no gradient
// flows through the batch statistics to the layer input.
type BatchNorm struct {
	features int
	eps      float64
	momentum float64

	gamma *Parameter
	beta  *Parameter

	runningMean *tensor.Tensor
	runningVar  *tensor.Tensor

	training bool
}

// BatchNormConfig holds configuration for BatchNorm.
type BatchNormConfig struct {
	Eps      float64 // numerical stabilizer (default: 1e-5)
	Momentum float64 // running-statistics update rate (default: 0.1)
}

// NewBatchNorm creates a BatchNorm layer over the given feature count.
func NewBatchNorm(features int, config BatchNormConfig) *BatchNorm {
	if config.Eps == 0 {
		config.Eps = 1e-5
	}
	if config.Momentum == 0 {
		config.Momentum = 0.1
	}

	shape := tensor.Shape{features}
	return &BatchNorm{
		features:    features,
		eps:         config.Eps,
		momentum:    config.Momentum,
		gamma:       NewParameter("gamma", Ones(shape)),
		beta:        NewParameter("beta", Zeros(shape)),
		runningMean: tensor.Zeros(shape, false),
		runningVar:  tensor.Ones(shape, false),
		training:    true,
	}
}

// SetTraining switches between batch statistics (training) and running
// statistics (inference).
func (b *BatchNorm) SetTraining(training bool) {
	b.training = training
}

// Forward normalizes the input per feature and applies gamma and beta.
//
// Accepts a rank-2 batch [batch_size, features] or a rank-1 vector
// (treated as a batch of one). Panics on a feature-count mismatch.
func (b *BatchNorm) Forward(input *tensor.Tensor) *tensor.Tensor {
	shape := input.Shape()
	batch := 1
	features := shape[len(shape)-1]
	if len(shape) == 2 {
		batch = shape[0]
	} else if len(shape) != 1 {
		panic(fmt.Sprintf("nn: BatchNorm.Forward expected rank-1 or rank-2 input, got shape %v", shape))
	}
	if features != b.features {
		panic(fmt.Sprintf("nn: BatchNorm.Forward expected %d features, got %d", b.features, features))
	}

	mean := make([]float64, b.features)
	variance := make([]float64, b.features)

	if b.training {
		for i := 0; i < batch; i++ {
			for f := 0; f < b.features; f++ {
				mean[f] += input.Data()[i*b.features+f]
			}
		}
		for f := range mean {
			mean[f] /= float64(batch)
		}
		for i := 0; i < batch; i++ {
			for f := 0; f < b.features; f++ {
				diff := input.Data()[i*b.features+f] - mean[f]
				variance[f] += diff * diff
			}
		}
		for f := range variance {
			variance[f] /= float64(batch) // biased estimator
		}

		rm, rv := b.runningMean.Data(), b.runningVar.Data()
		for f := 0; f < b.features; f++ {
			rm[f] = (1.0-b.momentum)*rm[f] + b.momentum*mean[f]
			rv[f] = (1.0-b.momentum)*rv[f] + b.momentum*variance[f]
		}
	} else {
		copy(mean, b.runningMean.Data())
		copy(variance, b.runningVar.Data())
	}

	gamma := b.gamma.Tensor()
	beta := b.beta.Tensor()
	normalized := make([]float64, batch*b.features)
	data := make([]float64, batch*b.features)
	for i := 0; i < batch; i++ {
		for f := 0; f < b.features; f++ {
			idx := i*b.features + f
			normalized[idx] = (input.Data()[idx] - mean[f]) / math.Sqrt(variance[f]+b.eps)
			data[idx] = gamma.Data()[f]*normalized[idx] + beta.Data()[f]
		}
	}

	requiresGrad := input.RequiresGrad() || gamma.RequiresGrad() || beta.RequiresGrad()
	inputs := []*tensor.Tensor{input, gamma, beta}
	var out *tensor.Tensor
	out = tensor.NewOp(data, input.Shape().Clone(), requiresGrad, inputs, func() {
		// Gamma and beta only; the statistics path is not differentiated.
		if gamma.RequiresGrad() {
			for i := 0; i < batch; i++ {
				for f := 0; f < b.features; f++ {
					gamma.Grad()[f] += normalized[i*b.features+f] * out.Grad()[i*b.features+f]
				}
			}
		}
		if beta.RequiresGrad() {
			for i := 0; i < batch; i++ {
				for f := 0; f < b.features; f++ {
					beta.Grad()[f] += out.Grad()[i*b.features+f]
				}
			}
		}
	})
	return out
}

// Parameters returns gamma then beta. The running statistics are not
// parameters and are not serialized.
func (b *BatchNorm) Parameters() []*Parameter {
	return []*Parameter{b.gamma, b.beta}
}

// RunningMean returns the running mean tensor.
func (b *BatchNorm) RunningMean() *tensor.Tensor {
	return b.runningMean
}

// RunningVar returns the running variance tensor.
func (b *BatchNorm) RunningVar() *tensor.Tensor {
	return b.runningVar
}
