package nn

import (
	"fmt"
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// Dropout randomly zeroes elements during training (inverted dropout).
//
// In training mode each element is independently dropped with the
// configured probability and the survivors are rescaled by 1/(1-rate),
// preserving the expected value of the output. The sampled keep mask is
// held only between the forward call and the immediately following
// backward call; backward propagates the upstream gradient through kept
// positions with the same rescale.
//
// In inference mode Dropout is the identity: the input tensor is
// returned unchanged and gradients pass through as usual.
type Dropout struct {
	rate     float64
	training bool
	mask     []bool
	rng      *rand.Rand
}

// NewDropout creates a Dropout layer with the given drop probability.
//
// The layer owns the generator so mask sampling is deterministic and
// testable given a seed. Panics if rate is outside [0, 1).
func NewDropout(rate float64, rng *rand.Rand) *Dropout {
	if rate < 0 || rate >= 1 {
		panic(fmt.Sprintf("nn: Dropout rate must be in [0, 1), got %v", rate))
	}
	return &Dropout{
		rate:     rate,
		training: true,
		rng:      rng,
	}
}

// SetTraining switches between training (mask and rescale) and inference
// (identity) behavior.
func (d *Dropout) SetTraining(training bool) {
	d.training = training
}

// Forward applies dropout in training mode; in inference mode it returns
// the input unchanged.
func (d *Dropout) Forward(input *tensor.Tensor) *tensor.Tensor {
	if !d.training {
		return input
	}

	n := input.NumElements()
	d.mask = make([]bool, n)
	scale := 1.0 / (1.0 - d.rate)

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		if d.rng.Float64() > d.rate {
			d.mask[i] = true
			data[i] = input.Data()[i] * scale
		}
	}

	mask := d.mask // the rule must see this call's mask, not a later one
	var out *tensor.Tensor
	out = tensor.NewOp(data, input.Shape().Clone(), input.RequiresGrad(), []*tensor.Tensor{input}, func() {
		if input.RequiresGrad() {
			for i := range input.Grad() {
				if mask[i] {
					input.Grad()[i] += out.Grad()[i] * scale
				}
			}
		}
	})
	return out
}

// Parameters returns nil (Dropout has no trainable parameters).
func (d *Dropout) Parameters() []*Parameter {
	return nil
}

// Rate returns the configured drop probability.
func (d *Dropout) Rate() float64 {
	return d.rate
}
