package nn

import (
	"github.com/darv-ml/darv/internal/serialization"
	"github.com/darv-ml/darv/internal/tensor"
)

// SaveModel writes a model's parameters to a file in the binary model
// format, in the model's registration order.
//
// Loading a file into a model expects the same architecture: the stored
// parameter count and shapes must match the live model positionally.
func SaveModel(model Module, path string) error {
	return serialization.Save(path, parameterTensors(model))
}

// LoadModel reads parameter values from a file into a model.
//
// The load is all-or-nothing: if the file's parameter count or any
// stored shape does not match the live model, no parameter is mutated
// and a descriptive error is returned.
func LoadModel(model Module, path string) error {
	return serialization.Load(path, parameterTensors(model))
}

// parameterTensors collects the underlying tensors of a model's
// parameters in registration order.
func parameterTensors(model Module) []*tensor.Tensor {
	params := model.Parameters()
	tensors := make([]*tensor.Tensor, len(params))
	for i, p := range params {
		tensors[i] = p.Tensor()
	}
	return tensors
}
