package optim

import (
	"math"

	"github.com/darv-ml/darv/internal/nn"
)

// AdaGrad scales updates by the running sum (not an EMA) of squared
// gradients, so frequently updated parameters see shrinking step sizes.
//
// Update rule:
//
//	sum_sq += grad²
//	param -= lr * grad / (sqrt(sum_sq) + eps)
type AdaGrad struct {
	params     []*nn.Parameter
	lr         float64
	eps        float64
	sumSquares map[*nn.Parameter][]float64
}

// AdaGradConfig holds configuration for the AdaGrad optimizer.
type AdaGradConfig struct {
	LR  float64 // learning rate (default: 0.01)
	Eps float64 // numerical stabilizer (default: 1e-8)
}

// NewAdaGrad creates a new AdaGrad optimizer over the given parameters.
func NewAdaGrad(params []*nn.Parameter, config AdaGradConfig) *AdaGrad {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	a := &AdaGrad{
		params:     params,
		lr:         config.LR,
		eps:        config.Eps,
		sumSquares: make(map[*nn.Parameter][]float64, len(params)),
	}
	for _, param := range params {
		a.sumSquares[param] = make([]float64, param.Tensor().NumElements())
	}
	return a
}

// Step performs a single AdaGrad update over all parameters.
func (a *AdaGrad) Step() {
	for _, param := range a.params {
		t := param.Tensor()
		if !t.RequiresGrad() {
			continue
		}
		data, grad := t.Data(), t.Grad()
		sumSq := a.sumSquares[param]

		for i := range data {
			g := grad[i]
			sumSq[i] += g * g
			data[i] -= a.lr * g / (math.Sqrt(sumSq[i]) + a.eps)
		}
	}
}

// ZeroGrad resets the gradients of all registered parameters.
func (a *AdaGrad) ZeroGrad() {
	zeroGrad(a.params)
}

// LR returns the current learning rate.
func (a *AdaGrad) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *AdaGrad) SetLR(lr float64) {
	a.lr = lr
}
