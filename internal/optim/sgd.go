package optim

import (
	"github.com/darv-ml/darv/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum and
// Nesterov lookahead.
//
// Update rules:
//
//	plain:    param -= lr * grad
//	momentum: v = momentum*v + lr*grad;  param -= v
//	nesterov: v = momentum*v + lr*grad;  param -= momentum*v + lr*grad
//
// Velocity buffers exist only when momentum is non-zero; they are keyed
// by parameter identity and allocated at construction.
type SGD struct {
	params   []*nn.Parameter
	lr       float64
	momentum float64
	nesterov bool
	velocity map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0, disabled)
	Nesterov bool    // enable Nesterov lookahead (requires momentum)
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	s := &SGD{
		params:   params,
		lr:       config.LR,
		momentum: config.Momentum,
		nesterov: config.Nesterov,
	}
	if config.Momentum > 0 {
		s.velocity = make(map[*nn.Parameter][]float64, len(params))
		for _, param := range params {
			s.velocity[param] = make([]float64, param.Tensor().NumElements())
		}
	}
	return s
}

// Step applies one SGD update to every parameter that requires gradients.
func (s *SGD) Step() {
	for _, param := range s.params {
		t := param.Tensor()
		if !t.RequiresGrad() {
			continue
		}
		data, grad := t.Data(), t.Grad()

		if s.momentum > 0 {
			v := s.velocity[param]
			for i := range data {
				v[i] = s.momentum*v[i] + s.lr*grad[i]
				if s.nesterov {
					data[i] -= s.momentum*v[i] + s.lr*grad[i]
				} else {
					data[i] -= v[i]
				}
			}
		} else {
			for i := range data {
				data[i] -= s.lr * grad[i]
			}
		}
	}
}

// ZeroGrad resets the gradients of all registered parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
