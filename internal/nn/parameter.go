package nn

import (
	"github.com/darv-ml/darv/internal/tensor"
)

// Parameter represents a trainable parameter in a neural network.
//
// A Parameter wraps a leaf tensor with requiresGrad set, typically a
// layer's weight or bias. The wrapped tensor is fixed for the Parameter's
// lifetime: optimizers key their auxiliary state by parameter identity,
// so replacing the tensor object would silently orphan that state. There
// is deliberately no setter.
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a new trainable parameter.
//
// The tensor should be initialized before wrapping. Its name is set to
// the parameter name for debugging output.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	t.SetName(name)
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name (e.g. "linear1.weight").
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// ZeroGrad resets the parameter's gradient buffer.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}
