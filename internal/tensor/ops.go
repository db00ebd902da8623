package tensor

import (
	"fmt"
	"math"
)

// Add performs element-wise addition: result = t + other.
//
// Both tensors must have identical shapes; no broadcasting is performed.
// Backward: the upstream gradient flows unchanged to both inputs.
// Panics on shape mismatch.
func (t *Tensor) Add(other *Tensor) *Tensor {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: Add shape mismatch: %v vs %v", t.shape, other.shape))
	}

	out := newResult(t.shape, t, other)
	for i := range out.data {
		out.data[i] = t.data[i] + other.data[i]
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += out.grad[i]
			}
		}
		if other.requiresGrad {
			for i := range other.grad {
				other.grad[i] += out.grad[i]
			}
		}
	})
	return out
}

// Mul performs element-wise multiplication: result = t * other.
//
// Both tensors must have identical shapes.
// Backward: d(a*b)/da = b and d(a*b)/db = a, each scaled by the upstream
// gradient. Panics on shape mismatch.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	if !t.shape.Equal(other.shape) {
		panic(fmt.Sprintf("tensor: Mul shape mismatch: %v vs %v", t.shape, other.shape))
	}

	out := newResult(t.shape, t, other)
	for i := range out.data {
		out.data[i] = t.data[i] * other.data[i]
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += other.data[i] * out.grad[i]
			}
		}
		if other.requiresGrad {
			for i := range other.grad {
				other.grad[i] += t.data[i] * out.grad[i]
			}
		}
	})
	return out
}

// MulScalar multiplies every element by a scalar.
// Backward scales the upstream gradient by the same scalar.
func (t *Tensor) MulScalar(scalar float64) *Tensor {
	out := newResult(t.shape, t)
	for i := range out.data {
		out.data[i] = t.data[i] * scalar
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += scalar * out.grad[i]
			}
		}
	})
	return out
}

// Pow raises every element to the given exponent: result = x^exponent.
//
// Backward applies exponent * x^(exponent-1) * upstream gradient. The
// derivative is undefined (NaN) for zero or negative bases with
// non-integer exponents; that is the caller's responsibility and is not
// trapped here.
func (t *Tensor) Pow(exponent float64) *Tensor {
	out := newResult(t.shape, t)
	for i := range out.data {
		out.data[i] = math.Pow(t.data[i], exponent)
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += exponent * math.Pow(t.data[i], exponent-1) * out.grad[i]
			}
		}
	})
	return out
}

// Sum reduces all elements to a single-element tensor of shape [1].
// Backward broadcasts the single upstream gradient value to every element
// of the input.
func (t *Tensor) Sum() *Tensor {
	out := newResult(Shape{1}, t)
	sum := 0.0
	for _, v := range t.data {
		sum += v
	}
	out.data[0] = sum

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += out.grad[0]
			}
		}
	})
	return out
}

// Mean reduces all elements to their average, as Sum() scaled by 1/size.
// It inherits Sum's backward rule plus the scalar-multiply rule.
func (t *Tensor) Mean() *Tensor {
	return t.Sum().MulScalar(1.0 / float64(len(t.data)))
}

// Reshape reinterprets the tensor's values under a new shape of equal
// total size. Values are copied into the new node; backward passes the
// upstream gradient through unchanged. Panics if the total sizes differ.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("tensor: Reshape: %v", err))
	}
	if shape.NumElements() != len(t.data) {
		panic(fmt.Sprintf("tensor: Reshape from %v to %v changes element count (%d vs %d)",
			t.shape, shape, len(t.data), shape.NumElements()))
	}

	out := newResult(shape, t)
	copy(out.data, t.data)

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				t.grad[i] += out.grad[i]
			}
		}
	})
	return out
}

// Flatten reshapes the tensor to rank 1.
func (t *Tensor) Flatten() *Tensor {
	return t.Reshape(Shape{len(t.data)})
}

// ReLU applies the rectified linear unit: max(0, x).
// Backward passes the upstream gradient only where the original input was
// strictly positive.
func (t *Tensor) ReLU() *Tensor {
	out := newResult(t.shape, t)
	for i := range out.data {
		if t.data[i] > 0 {
			out.data[i] = t.data[i]
		}
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				if t.data[i] > 0 {
					t.grad[i] += out.grad[i]
				}
			}
		}
	})
	return out
}

// Sigmoid applies the logistic function 1/(1+e^-x).
// Backward reuses the output value s: s*(1-s)*upstream gradient, with no
// recomputation of the raw input.
func (t *Tensor) Sigmoid() *Tensor {
	out := newResult(t.shape, t)
	for i := range out.data {
		out.data[i] = 1.0 / (1.0 + math.Exp(-t.data[i]))
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				s := out.data[i]
				t.grad[i] += s * (1.0 - s) * out.grad[i]
			}
		}
	})
	return out
}

// Tanh applies the hyperbolic tangent.
// Backward reuses the output value: (1-tanh²)*upstream gradient.
func (t *Tensor) Tanh() *Tensor {
	out := newResult(t.shape, t)
	for i := range out.data {
		out.data[i] = math.Tanh(t.data[i])
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := range t.grad {
				v := out.data[i]
				t.grad[i] += (1.0 - v*v) * out.grad[i]
			}
		}
	})
	return out
}
