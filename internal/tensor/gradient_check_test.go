package tensor

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// checkGradient compares the gradient computed by Backward against a
// central finite-difference estimate of the same scalar function.
func checkGradient(t *testing.T, name string, x0 []float64, f func(x *Tensor) *Tensor) {
	t.Helper()

	x := mustNew(t, x0, Shape{len(x0)}, true)
	loss := f(x)
	if !loss.Shape().Equal(Shape{1}) {
		t.Fatalf("%s: gradient check needs a scalar loss, got shape %v", name, loss.Shape())
	}
	loss.Backward()

	numeric := fd.Gradient(nil, func(v []float64) float64 {
		in := mustNew(t, v, Shape{len(v)}, false)
		return f(in).Item()
	}, x0, &fd.Settings{Formula: fd.Central})

	if !floats.EqualApprox(numeric, x.Grad(), 1e-6) {
		t.Errorf("%s: analytic gradient %v disagrees with finite differences %v", name, x.Grad(), numeric)
	}
}

func TestGradientCheckPolynomial(t *testing.T) {
	checkGradient(t, "x^3 + 2x", []float64{1.5, -0.5, 2.0}, func(x *Tensor) *Tensor {
		return x.Pow(3).Add(x.MulScalar(2)).Sum()
	})
}

func TestGradientCheckActivations(t *testing.T) {
	x0 := []float64{-1.2, -0.3, 0.4, 1.7}

	checkGradient(t, "sigmoid", x0, func(x *Tensor) *Tensor {
		return x.Sigmoid().Sum()
	})
	checkGradient(t, "tanh", x0, func(x *Tensor) *Tensor {
		return x.Tanh().Sum()
	})
	// Stay away from zero, where ReLU is not differentiable.
	checkGradient(t, "relu", x0, func(x *Tensor) *Tensor {
		return x.ReLU().Sum()
	})
}

func TestGradientCheckComposite(t *testing.T) {
	checkGradient(t, "mean(tanh(x)^2 * x)", []float64{0.3, -0.8, 1.1, 0.5}, func(x *Tensor) *Tensor {
		return x.Tanh().Pow(2).Mul(x).Mean()
	})
}

func TestGradientCheckSharedInput(t *testing.T) {
	checkGradient(t, "x*x + 3x", []float64{0.7, -1.3}, func(x *Tensor) *Tensor {
		return x.Mul(x).Add(x.MulScalar(3)).Sum()
	})
}

func TestGradientCheckMatMul(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	bData := make([]float64, 6)
	for i := range bData {
		bData[i] = rng.NormFloat64()
	}

	checkGradient(t, "sum(x @ B)", []float64{0.5, -1.0, 2.0, 1.5, -0.5, 0.25}, func(x *Tensor) *Tensor {
		b := mustNew(t, bData, Shape{3, 2}, false)
		return x.Reshape(Shape{2, 3}).MatMul(b).Sum()
	})
}
