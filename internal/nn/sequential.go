package nn

import (
	"github.com/darv-ml/darv/internal/tensor"
)

// Sequential is a container module that chains modules together.
//
// Each module's output becomes the next module's input. The parameter
// set is the concatenation of every module's parameters in registration
// order; that order is the positional contract model serialization
// relies on.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(2, 4, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(4, 1, rng),
//	    nn.NewSigmoid(),
//	)
//	output := model.Forward(input)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{
		modules: modules,
	}
}

// Forward applies all modules in sequence.
func (s *Sequential) Forward(input *tensor.Tensor) *tensor.Tensor {
	output := input
	for _, module := range s.modules {
		output = module.Forward(output)
	}
	return output
}

// Parameters returns all trainable parameters from all modules, in
// registration order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// SetTraining propagates the training/inference mode to every module
// that distinguishes the two (Dropout, BatchNorm).
func (s *Sequential) SetTraining(training bool) {
	for _, module := range s.modules {
		if tm, ok := module.(TrainingMode); ok {
			tm.SetTraining(training)
		}
	}
}

// ZeroGrad resets the gradients of every parameter in the container.
func (s *Sequential) ZeroGrad() {
	for _, param := range s.Parameters() {
		param.ZeroGrad()
	}
}
