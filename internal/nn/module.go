// Package nn implements neural network modules for the Darv ML Framework.
//
// This package provides building blocks for constructing networks on top
// of the computational graph in internal/tensor:
//   - Module interface: base interface for all NN components
//   - Parameter: named trainable tensors
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid, Tanh
//   - Dropout, BatchNorm: layers with distinct train/eval behavior
//   - Loss functions: MSE, binary cross-entropy
//   - Sequential: container for stacking layers
//
// Design inspired by PyTorch's nn.Module.
package nn

import (
	"github.com/darv-ml/darv/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Modules compose to build architectures:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 4, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(4, 1, rng),
//	    nn.NewSigmoid(),
//	)
type Module interface {
	// Forward computes the output of the module given an input tensor.
	Forward(input *tensor.Tensor) *tensor.Tensor

	// Parameters returns all trainable parameters of this module, in a
	// fixed registration order. Modules without trainable parameters
	// (e.g. activations) return nil.
	Parameters() []*Parameter
}

// TrainingMode is implemented by modules whose forward behavior differs
// between training and inference (Dropout, BatchNorm).
type TrainingMode interface {
	// SetTraining switches the module between training and inference
	// behavior.
	SetTraining(training bool)
}
