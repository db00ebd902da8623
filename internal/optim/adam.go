package optim

import (
	"math"

	"github.com/darv-ml/darv/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Adam combines momentum and RMSprop: it maintains exponential moving
// averages of gradients (first moment) and squared gradients (second
// moment) per parameter, bias-corrects both to counteract their
// zero initialization, and scales updates by the corrected moments.
//
// Update rule:
//
//	m = beta1*m + (1-beta1)*grad
//	v = beta2*v + (1-beta2)*grad²
//	m̂ = m / (1 - beta1^t)
//	v̂ = v / (1 - beta2^t)
//	param -= lr * m̂ / (sqrt(v̂) + eps)
//
// The timestep t is shared across all parameters and incremented once
// per Step call, not per parameter.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014).
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // shared timestep for bias correction
	m      map[*nn.Parameter][]float64
	v      map[*nn.Parameter][]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64 // learning rate (default: 0.001)
	Beta1 float64 // first-moment decay (default: 0.9)
	Beta2 float64 // second-moment decay (default: 0.999)
	Eps   float64 // numerical stabilizer (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given parameters.
// Moment buffers are keyed by parameter identity and allocated here.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	a := &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make(map[*nn.Parameter][]float64, len(params)),
		v:      make(map[*nn.Parameter][]float64, len(params)),
	}
	for _, param := range params {
		n := param.Tensor().NumElements()
		a.m[param] = make([]float64, n)
		a.v[param] = make([]float64, n)
	}
	return a
}

// Step performs a single Adam update over all parameters.
func (a *Adam) Step() {
	a.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		t := param.Tensor()
		if !t.RequiresGrad() {
			continue
		}
		data, grad := t.Data(), t.Grad()
		m, v := a.m[param], a.v[param]

		for i := range data {
			g := grad[i]
			m[i] = a.beta1*m[i] + (1.0-a.beta1)*g
			v[i] = a.beta2*v[i] + (1.0-a.beta2)*g*g

			mHat := m[i] / biasCorrection1
			vHat := v[i] / biasCorrection2

			data[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// ZeroGrad resets the gradients of all registered parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// Timestep returns the shared timestep counter.
func (a *Adam) Timestep() int {
	return a.t
}
