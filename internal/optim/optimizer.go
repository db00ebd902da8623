// Package optim implements optimization algorithms and learning-rate
// schedulers for training neural networks.
//
// This package provides:
//   - Optimizer interface: base interface for all optimizers
//   - SGD: stochastic gradient descent with momentum and Nesterov lookahead
//   - Adam: adaptive moment estimation with bias correction
//   - RMSprop: EMA of squared gradients
//   - AdaGrad: running sum of squared gradients
//   - StepLR, ExponentialLR, CosineAnnealingLR schedulers
//
// Design inspired by PyTorch's torch.optim.
//
// Example usage:
//
//	optimizer := optim.NewAdam(model.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    loss := lossFn.Forward(model.Forward(input), targets)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
//
// Stateful optimizers key their per-parameter auxiliary buffers by
// parameter identity. The buffers are allocated once at construction;
// a parameter object replaced after that would silently orphan its
// accumulated state, which is why Parameter carries no tensor setter.
package optim

import (
	"github.com/darv-ml/darv/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one gradient update to every registered parameter
	// whose tensor requires gradients, using the gradient currently
	// accumulated in the tensor.
	Step()

	// ZeroGrad resets the gradients of all registered parameters.
	// Call before each backward pass to prevent accumulation across
	// iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate. Used by schedulers.
	SetLR(lr float64)
}

// zeroGrad resets the gradients of every parameter in the list.
func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}
