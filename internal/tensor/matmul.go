package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MatMul performs 2-D matrix multiplication: result = t @ other.
//
// Both operands must be exactly rank 2 and the inner dimensions must
// agree: [m, k] @ [k, n] = [m, n]. The product and both backward products
// are computed with gonum's dense matrix kernels.
//
// Backward:
//
//	dL/dA = dL/dC @ Bᵗ
//	dL/dB = Aᵗ @ dL/dC
//
// Panics on a rank violation or incompatible inner dimensions.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	if len(t.shape) != 2 || len(other.shape) != 2 {
		panic(fmt.Sprintf("tensor: MatMul requires rank-2 operands, got %v and %v", t.shape, other.shape))
	}
	m, k := t.shape[0], t.shape[1]
	n := other.shape[1]
	if other.shape[0] != k {
		panic(fmt.Sprintf("tensor: MatMul inner dimensions disagree: %v @ %v", t.shape, other.shape))
	}

	a := mat.NewDense(m, k, t.data)
	b := mat.NewDense(k, n, other.data)

	out := newResult(Shape{m, n}, t, other)
	c := mat.NewDense(m, n, out.data)
	c.Mul(a, b)

	out.setBackward(func() {
		g := mat.NewDense(m, n, out.grad)
		if t.requiresGrad {
			// dL/dA = dL/dC @ Bᵗ, accumulated into the existing gradient.
			var da mat.Dense
			da.Mul(g, b.T())
			ga := mat.NewDense(m, k, t.grad)
			ga.Add(ga, &da)
		}
		if other.requiresGrad {
			// dL/dB = Aᵗ @ dL/dC
			var db mat.Dense
			db.Mul(a.T(), g)
			gb := mat.NewDense(k, n, other.grad)
			gb.Add(gb, &db)
		}
	})
	return out
}

// Transpose swaps the two dimensions of a rank-2 tensor.
// Backward transposes the upstream gradient back into the input's layout.
// Panics if the tensor is not rank 2.
func (t *Tensor) Transpose() *Tensor {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("tensor: Transpose requires a rank-2 tensor, got %v", t.shape))
	}
	rows, cols := t.shape[0], t.shape[1]

	out := newResult(Shape{cols, rows}, t)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.data[j*rows+i] = t.data[i*cols+j]
		}
	}

	out.setBackward(func() {
		if t.requiresGrad {
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					t.grad[i*cols+j] += out.grad[j*rows+i]
				}
			}
		}
	})
	return out
}
