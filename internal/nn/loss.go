package nn

import (
	"fmt"
	"math"

	"github.com/darv-ml/darv/internal/tensor"
)

// MSELoss computes mean squared error: mean((predictions - targets)²).
//
// Both tensors are flattened before comparison, so predictions shaped
// [batch, 1] compare cleanly against targets shaped [batch]. The loss is
// built from graph operations, so Backward on the result propagates
// through the predictions.
type MSELoss struct{}

// NewMSELoss creates a new MSE loss function.
func NewMSELoss() *MSELoss {
	return &MSELoss{}
}

// Forward computes the loss as a single-element tensor.
// Panics if the flattened sizes differ.
func (m *MSELoss) Forward(predictions, targets *tensor.Tensor) *tensor.Tensor {
	pred := predictions.Flatten()
	target := targets.Flatten()
	if pred.NumElements() != target.NumElements() {
		panic(fmt.Sprintf("nn: MSELoss size mismatch: %d predictions vs %d targets",
			pred.NumElements(), target.NumElements()))
	}

	diff := pred.Add(target.MulScalar(-1))
	return diff.Mul(diff).Mean()
}

// CrossEntropyLoss computes binary cross-entropy:
//
//	loss = -mean(t·log(p) + (1-t)·log(1-p))
//
// Predictions are clipped into [eps, 1-eps] with eps = 1e-7 before the
// logarithms, for numerical stability. Targets are expected in [0, 1].
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new binary cross-entropy loss function.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the loss as a single-element tensor.
// Panics if the flattened sizes differ.
func (c *CrossEntropyLoss) Forward(predictions, targets *tensor.Tensor) *tensor.Tensor {
	const eps = 1e-7

	pred := predictions.Flatten()
	target := targets.Flatten()
	if pred.NumElements() != target.NumElements() {
		panic(fmt.Sprintf("nn: CrossEntropyLoss size mismatch: %d predictions vs %d targets",
			pred.NumElements(), target.NumElements()))
	}

	// Clip the flattened copy; the caller's prediction tensor is untouched.
	data := pred.Data()
	for i, p := range data {
		data[i] = math.Max(eps, math.Min(1.0-eps, p))
	}

	ones := tensor.Ones(pred.Shape(), false)
	logP := logOp(pred)
	logOneMinusP := logOp(ones.Add(pred.MulScalar(-1)))

	term1 := target.Mul(logP)
	term2 := ones.Add(target.MulScalar(-1)).Mul(logOneMinusP)

	return term1.Add(term2).Mean().MulScalar(-1)
}

// logOp builds a graph node for the element-wise natural logarithm.
// Backward applies 1/x times the upstream gradient.
func logOp(t *tensor.Tensor) *tensor.Tensor {
	data := make([]float64, t.NumElements())
	for i, v := range t.Data() {
		data[i] = math.Log(v)
	}

	var out *tensor.Tensor
	out = tensor.NewOp(data, t.Shape().Clone(), t.RequiresGrad(), []*tensor.Tensor{t}, func() {
		if t.RequiresGrad() {
			for i := range t.Grad() {
				t.Grad()[i] += out.Grad()[i] / t.Data()[i]
			}
		}
	})
	return out
}
