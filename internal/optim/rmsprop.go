package optim

import (
	"math"

	"github.com/darv-ml/darv/internal/nn"
)

// RMSprop scales updates by an exponential moving average of squared
// gradients.
//
// Update rule:
//
//	sq_avg = alpha*sq_avg + (1-alpha)*grad²
//	param -= lr * grad / (sqrt(sq_avg) + eps)
type RMSprop struct {
	params    []*nn.Parameter
	lr        float64
	alpha     float64
	eps       float64
	squareAvg map[*nn.Parameter][]float64
}

// RMSpropConfig holds configuration for the RMSprop optimizer.
type RMSpropConfig struct {
	LR    float64 // learning rate (default: 0.01)
	Alpha float64 // smoothing constant (default: 0.99)
	Eps   float64 // numerical stabilizer (default: 1e-8)
}

// NewRMSprop creates a new RMSprop optimizer over the given parameters.
func NewRMSprop(params []*nn.Parameter, config RMSpropConfig) *RMSprop {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Alpha == 0 {
		config.Alpha = 0.99
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	r := &RMSprop{
		params:    params,
		lr:        config.LR,
		alpha:     config.Alpha,
		eps:       config.Eps,
		squareAvg: make(map[*nn.Parameter][]float64, len(params)),
	}
	for _, param := range params {
		r.squareAvg[param] = make([]float64, param.Tensor().NumElements())
	}
	return r
}

// Step performs a single RMSprop update over all parameters.
func (r *RMSprop) Step() {
	for _, param := range r.params {
		t := param.Tensor()
		if !t.RequiresGrad() {
			continue
		}
		data, grad := t.Data(), t.Grad()
		sqAvg := r.squareAvg[param]

		for i := range data {
			g := grad[i]
			sqAvg[i] = r.alpha*sqAvg[i] + (1.0-r.alpha)*g*g
			data[i] -= r.lr * g / (math.Sqrt(sqAvg[i]) + r.eps)
		}
	}
}

// ZeroGrad resets the gradients of all registered parameters.
func (r *RMSprop) ZeroGrad() {
	zeroGrad(r.params)
}

// LR returns the current learning rate.
func (r *RMSprop) LR() float64 {
	return r.lr
}

// SetLR updates the learning rate.
func (r *RMSprop) SetLR(lr float64) {
	r.lr = lr
}
