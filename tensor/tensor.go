// Copyright 2025 Darv ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for tensor operations in the Darv ML framework.
//
// Tensors are nodes in a dynamic computation graph: every operation on a
// tensor produces a new tensor that remembers its inputs and the local
// gradient rule needed to differentiate through it. Calling Backward on a
// scalar result propagates gradients to every tensor created with
// requiresGrad set.
//
// Example:
//
//	x, _ := tensor.New([]float64{2.0}, tensor.Shape{1}, true)
//	y := x.Mul(x).Add(x) // y = x^2 + x
//	y.Backward()
//	// x.Grad() == [5.0]
package tensor

import (
	"math/rand"

	"github.com/darv-ml/darv/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// Tensor is a node in the computation graph. It holds a data buffer, an
// optional gradient buffer, and the edges and backward rule recorded by
// the operation that produced it.
type Tensor = tensor.Tensor

// Creation functions

// New creates a tensor from a data slice and shape.
//
// Example:
//
//	x, err := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, true)
func New(data []float64, shape Shape, requiresGrad bool) (*Tensor, error) {
	return tensor.New(data, shape, requiresGrad)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, requiresGrad bool) *Tensor {
	return tensor.Zeros(shape, requiresGrad)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, requiresGrad bool) *Tensor {
	return tensor.Ones(shape, requiresGrad)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, requiresGrad bool) *Tensor {
	return tensor.Full(shape, value, requiresGrad)
}

// Randn creates a tensor filled with random values from the standard
// normal distribution N(0, 1), drawn from the given source.
func Randn(shape Shape, requiresGrad bool, rng *rand.Rand) *Tensor {
	return tensor.Randn(shape, requiresGrad, rng)
}

// NewOp creates a tensor that participates in the computation graph as the
// output of a custom operation.
//
// This is a low-level function for extending the operation library. Most
// users should use the built-in tensor methods instead.
func NewOp(data []float64, shape Shape, requiresGrad bool, inputs []*Tensor, backward func()) *Tensor {
	return tensor.NewOp(data, shape, requiresGrad, inputs, backward)
}
