package tensor

import (
	"math"
	"testing"
)

func mustNew(t *testing.T, data []float64, shape Shape, requiresGrad bool) *Tensor {
	t.Helper()
	x, err := New(data, shape, requiresGrad)
	if err != nil {
		t.Fatalf("New(%v, %v) returned error: %v", data, shape, err)
	}
	return x
}

// Element-wise Operations

func TestAdd(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, Shape{3}, true)
	b := mustNew(t, []float64{10, 20, 30}, Shape{3}, true)

	c := a.Add(b)
	assertEqualFloats(t, []float64{11, 22, 33}, c.Data(), "Add forward")

	c.Backward()
	assertEqualFloats(t, []float64{1, 1, 1}, a.Grad(), "Add gradient to a")
	assertEqualFloats(t, []float64{1, 1, 1}, b.Grad(), "Add gradient to b")
}

func TestAddOnesBatch(t *testing.T) {
	a := Ones(Shape{3, 2}, true)
	b := Full(Shape{3, 2}, 2, true)

	c := a.Add(b)
	assertEqualFloats(t, []float64{3, 3, 3, 3, 3, 3}, c.Data(), "ones + twos")

	c.Sum().Backward()
	assertEqualFloats(t, []float64{1, 1, 1, 1, 1, 1}, a.Grad(), "gradient to a")
	assertEqualFloats(t, []float64{1, 1, 1, 1, 1, 1}, b.Grad(), "gradient to b")
}

func TestAddShapeMismatchPanics(t *testing.T) {
	a := Zeros(Shape{2}, false)
	b := Zeros(Shape{3}, false)
	assertPanics(t, "Add with mismatched shapes", func() { a.Add(b) })
}

func TestMul(t *testing.T) {
	a := mustNew(t, []float64{2, 3}, Shape{2}, true)
	b := mustNew(t, []float64{5, 7}, Shape{2}, true)

	c := a.Mul(b)
	assertEqualFloats(t, []float64{10, 21}, c.Data(), "Mul forward")

	c.Backward()
	assertEqualFloats(t, []float64{5, 7}, a.Grad(), "d(a*b)/da = b")
	assertEqualFloats(t, []float64{2, 3}, b.Grad(), "d(a*b)/db = a")
}

func TestMulScalar(t *testing.T) {
	a := mustNew(t, []float64{1, -2}, Shape{2}, true)

	c := a.MulScalar(3)
	assertEqualFloats(t, []float64{3, -6}, c.Data(), "MulScalar forward")

	c.Backward()
	assertEqualFloats(t, []float64{3, 3}, a.Grad(), "MulScalar gradient")
}

func TestPow(t *testing.T) {
	a := mustNew(t, []float64{2, 3}, Shape{2}, true)

	c := a.Pow(2)
	assertEqualFloats(t, []float64{4, 9}, c.Data(), "Pow forward")

	c.Backward()
	// d(x^2)/dx = 2x
	assertEqualFloats(t, []float64{4, 6}, a.Grad(), "Pow gradient")
}

func TestPowFractionalExponent(t *testing.T) {
	a := mustNew(t, []float64{4}, Shape{1}, true)

	c := a.Pow(0.5)
	assertEqualFloat64(t, 2, c.Item(), "sqrt forward")

	c.Backward()
	// d(sqrt(x))/dx = 0.5 / sqrt(x)
	assertEqualFloat64(t, 0.25, a.Grad()[0], "sqrt gradient")
}

// Reductions

func TestSum(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, Shape{2, 2}, true)

	s := a.Sum()
	assertEqualShape(t, Shape{1}, s.Shape(), "Sum shape")
	assertEqualFloat64(t, 10, s.Item(), "Sum forward")

	s.Backward()
	assertEqualFloats(t, []float64{1, 1, 1, 1}, a.Grad(), "Sum broadcasts the upstream gradient")
}

func TestMean(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, Shape{4}, true)

	m := a.Mean()
	assertEqualFloat64(t, 2.5, m.Item(), "Mean forward")

	m.Backward()
	assertEqualFloats(t, []float64{0.25, 0.25, 0.25, 0.25}, a.Grad(), "Mean gradient is 1/n")
}

// Shape Operations

func TestReshape(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, true)

	r := a.Reshape(Shape{3, 2})
	assertEqualShape(t, Shape{3, 2}, r.Shape(), "Reshape shape")
	assertEqualFloats(t, a.Data(), r.Data(), "Reshape preserves row-major order")

	r.Sum().Backward()
	assertEqualFloats(t, []float64{1, 1, 1, 1, 1, 1}, a.Grad(), "Reshape passes gradients through")
}

func TestReshapeSizeMismatchPanics(t *testing.T) {
	a := Zeros(Shape{2, 3}, false)
	assertPanics(t, "Reshape changing element count", func() { a.Reshape(Shape{2, 2}) })
}

func TestFlatten(t *testing.T) {
	a := Zeros(Shape{2, 3}, false)
	f := a.Flatten()
	assertEqualShape(t, Shape{6}, f.Shape(), "Flatten shape")
}

// Activations

func TestReLU(t *testing.T) {
	a := mustNew(t, []float64{-2, -0.5, 0, 0.5, 2}, Shape{5}, true)

	r := a.ReLU()
	assertEqualFloats(t, []float64{0, 0, 0, 0.5, 2}, r.Data(), "ReLU forward")

	r.Sum().Backward()
	// The gate opens only for strictly positive inputs; x = 0 blocks.
	assertEqualFloats(t, []float64{0, 0, 0, 1, 1}, a.Grad(), "ReLU gradient gate")
}

func TestSigmoid(t *testing.T) {
	a := mustNew(t, []float64{0}, Shape{1}, true)

	s := a.Sigmoid()
	assertEqualFloat64(t, 0.5, s.Item(), "sigmoid(0)")

	s.Backward()
	// s * (1 - s) at s = 0.5
	assertEqualFloat64(t, 0.25, a.Grad()[0], "sigmoid gradient at 0")
}

func TestSigmoidSaturation(t *testing.T) {
	a := mustNew(t, []float64{100, -100}, Shape{2}, false)
	s := a.Sigmoid()
	assertEqualFloat64(t, 1, s.Data()[0], "sigmoid(100)")
	assertEqualFloat64(t, 0, s.Data()[1], "sigmoid(-100)")
}

func TestTanh(t *testing.T) {
	a := mustNew(t, []float64{0, 1}, Shape{2}, true)

	h := a.Tanh()
	assertEqualFloat64(t, 0, h.Data()[0], "tanh(0)")
	assertEqualFloat64(t, math.Tanh(1), h.Data()[1], "tanh(1)")

	h.Sum().Backward()
	assertEqualFloat64(t, 1, a.Grad()[0], "tanh gradient at 0")
	v := math.Tanh(1)
	assertEqualFloat64(t, 1-v*v, a.Grad()[1], "tanh gradient at 1")
}

// Matrix Operations

func TestMatMul(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, true)
	b := mustNew(t, []float64{7, 8, 9, 10, 11, 12}, Shape{3, 2}, true)

	c := a.MatMul(b)
	assertEqualShape(t, Shape{2, 2}, c.Shape(), "MatMul shape")
	assertEqualFloats(t, []float64{58, 64, 139, 154}, c.Data(), "MatMul forward")
}

func TestMatMulBackward(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, Shape{2, 2}, true)
	b := mustNew(t, []float64{5, 6, 7, 8}, Shape{2, 2}, true)

	c := a.MatMul(b)
	c.Sum().Backward()

	// With upstream gradient all ones: dL/dA = 1 @ B^T, dL/dB = A^T @ 1.
	assertEqualFloats(t, []float64{11, 15, 11, 15}, a.Grad(), "MatMul gradient to a")
	assertEqualFloats(t, []float64{4, 4, 6, 6}, b.Grad(), "MatMul gradient to b")
}

func TestMatMulPanics(t *testing.T) {
	assertPanics(t, "rank-1 operand", func() {
		Zeros(Shape{2}, false).MatMul(Zeros(Shape{2, 2}, false))
	})
	assertPanics(t, "inner dimension mismatch", func() {
		Zeros(Shape{2, 3}, false).MatMul(Zeros(Shape{2, 2}, false))
	})
}

func TestTranspose(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, true)

	tr := a.Transpose()
	assertEqualShape(t, Shape{3, 2}, tr.Shape(), "Transpose shape")
	assertEqualFloats(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data(), "Transpose forward")

	tr.MulScalar(2).Sum().Backward()
	assertEqualFloats(t, []float64{2, 2, 2, 2, 2, 2}, a.Grad(), "Transpose gradient")
}

func TestTransposePanicsOnRank1(t *testing.T) {
	assertPanics(t, "Transpose on rank-1 tensor", func() {
		Zeros(Shape{3}, false).Transpose()
	})
}

// Result Propagation

func TestResultRequiresGradPropagation(t *testing.T) {
	a := Ones(Shape{2}, true)
	b := Ones(Shape{2}, false)

	if !a.Add(b).RequiresGrad() {
		t.Error("result should require gradients when any input does")
	}
	if b.Add(b).RequiresGrad() {
		t.Error("result should not require gradients when no input does")
	}
}

func TestGradFreeInputReceivesNoGradient(t *testing.T) {
	a := Ones(Shape{2}, true)
	b := Ones(Shape{2}, false)

	a.Mul(b).Sum().Backward()
	assertEqualFloats(t, []float64{1, 1}, a.Grad(), "gradient to a")
	if b.Grad() != nil {
		t.Error("gradient-free input must keep a nil gradient buffer")
	}
}
