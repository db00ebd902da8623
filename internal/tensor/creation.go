package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros(tensor.Shape{3, 4}, true)
func Zeros(shape Shape, requiresGrad bool) *Tensor {
	if err := shape.Validate(); err != nil {
		panic(err)
	}
	return newNode(shape, requiresGrad)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, requiresGrad bool) *Tensor {
	t := Zeros(shape, requiresGrad)
	for i := range t.data {
		t.data[i] = 1.0
	}
	return t
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64, requiresGrad bool) *Tensor {
	t := Zeros(shape, requiresGrad)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Randn creates a tensor with values drawn from the standard normal
// distribution N(0, 1) using the Box-Muller transform.
//
// The generator is passed explicitly so initialization is deterministic
// and testable given a seed:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.Randn(tensor.Shape{100, 100}, true, rng)
func Randn(shape Shape, requiresGrad bool, rng *rand.Rand) *Tensor {
	t := Zeros(shape, requiresGrad)
	for i := range t.data {
		t.data[i] = boxMuller(rng)
	}
	return t
}

// boxMuller draws one sample from N(0, 1).
func boxMuller(rng *rand.Rand) float64 {
	// u1 must be strictly positive for the log.
	u1 := 1.0 - rng.Float64()
	u2 := rng.Float64()
	return math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
}
