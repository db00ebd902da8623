// Copyright 2025 Darv ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/darv-ml/darv/internal/nn"
	"github.com/darv-ml/darv/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// TrainingMode is implemented by modules whose forward pass differs between
// training and evaluation, such as Dropout and BatchNorm.
type TrainingMode = nn.TrainingMode

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	layer := nn.NewLinear(13, 64, rng)
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// Dropout represents a dropout regularization layer.
type Dropout = nn.Dropout

// NewDropout creates a new dropout layer with the given drop rate.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	drop := nn.NewDropout(0.5, rng)
func NewDropout(rate float64, rng *rand.Rand) *Dropout {
	return nn.NewDropout(rate, rng)
}

// BatchNorm represents a 1D batch normalization layer.
type BatchNorm = nn.BatchNorm

// BatchNormConfig holds the configuration for a BatchNorm layer.
type BatchNormConfig = nn.BatchNormConfig

// NewBatchNorm creates a new batch normalization layer over the given
// number of features.
//
// Example:
//
//	bn := nn.NewBatchNorm(64, nn.BatchNormConfig{})
func NewBatchNorm(numFeatures int, config BatchNormConfig) *BatchNorm {
	return nn.NewBatchNorm(numFeatures, config)
}

// Activations

// ReLU represents the Rectified Linear Unit activation function.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
//
// Example:
//
//	relu := nn.NewReLU()
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// Sigmoid represents the Sigmoid activation function.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a new Sigmoid activation layer.
//
// Example:
//
//	sigmoid := nn.NewSigmoid()
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// Tanh represents the Tanh activation function.
type Tanh = nn.Tanh

// NewTanh creates a new Tanh activation layer.
//
// Example:
//
//	tanh := nn.NewTanh()
func NewTanh() *Tanh {
	return nn.NewTanh()
}

// Loss Functions

// MSELoss represents the mean squared error loss for regression.
type MSELoss = nn.MSELoss

// NewMSELoss creates a new MSE loss function.
//
// Example:
//
//	criterion := nn.NewMSELoss()
//	loss := criterion.Forward(predictions, targets)
func NewMSELoss() *MSELoss {
	return nn.NewMSELoss()
}

// CrossEntropyLoss represents the binary cross-entropy loss for classification.
type CrossEntropyLoss = nn.CrossEntropyLoss

// NewCrossEntropyLoss creates a new cross-entropy loss function.
//
// Example:
//
//	criterion := nn.NewCrossEntropyLoss()
//	loss := criterion.Forward(probabilities, labels)
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// Sequential

// Sequential represents a sequential container of modules.
type Sequential = nn.Sequential

// NewSequential creates a new sequential model.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewLinear(13, 64, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(64, 1, rng),
//	    nn.NewSigmoid(),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Initialization functions

// Xavier initializes a tensor using Xavier/Glorot initialization.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	weights := nn.Xavier(13, 64, tensor.Shape{64, 13}, rng)
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}

// Zeros initializes a trainable tensor with zeros (for biases).
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return nn.Zeros(shape)
}

// Ones initializes a trainable tensor with ones.
func Ones(shape tensor.Shape) *tensor.Tensor {
	return nn.Ones(shape)
}

// Persistence

// SaveModel writes all parameters of a model to a binary file.
//
// Example:
//
//	err := nn.SaveModel(model, "model.bin")
func SaveModel(model Module, path string) error {
	return nn.SaveModel(model, path)
}

// LoadModel reads parameters from a binary file into a model with the same
// architecture. The load is all-or-nothing: on any mismatch the model is
// left untouched.
//
// Example:
//
//	err := nn.LoadModel(model, "model.bin")
func LoadModel(model Module, path string) error {
	return nn.LoadModel(model, path)
}
