package tensor

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

// Test helpers

func assertEqualFloat64(t *testing.T, expected, actual float64, msg string) {
	t.Helper()
	if math.Abs(expected-actual) > 1e-9 {
		t.Errorf("%s: expected %v, got %v", msg, expected, actual)
	}
}

func assertEqualFloats(t *testing.T, expected, actual []float64, msg string) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("%s: expected %d values, got %d", msg, len(expected), len(actual))
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > 1e-9 {
			t.Errorf("%s: element %d: expected %v, got %v", msg, i, expected[i], actual[i])
		}
	}
}

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func assertPanics(t *testing.T, msg string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", msg)
		}
	}()
	fn()
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{1}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3}).Validate(); err != nil {
		t.Errorf("Shape{2, 3}.Validate() = %v, want nil", err)
	}
	if err := (Shape{2, 0}).Validate(); err == nil {
		t.Error("Shape{2, 0}.Validate() = nil, want error")
	}
	if err := (Shape{-1}).Validate(); err == nil {
		t.Error("Shape{-1}.Validate() = nil, want error")
	}
}

func TestShapeEqual(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("Shape{2, 3} should equal Shape{2, 3}")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("Shape{2, 3} should not equal Shape{3, 2}")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank should not be equal")
	}
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := Shape{2, 3}
	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("mutating a clone must not affect the original shape")
	}
}

// Construction Tests

func TestNew(t *testing.T) {
	x, err := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	assertEqualShape(t, Shape{2, 3}, x.Shape(), "New shape")
	assertEqualFloats(t, []float64{1, 2, 3, 4, 5, 6}, x.Data(), "New data")
	if !x.RequiresGrad() {
		t.Error("tensor should require gradients")
	}
	if len(x.Grad()) != 6 {
		t.Errorf("gradient buffer length = %d, want 6", len(x.Grad()))
	}
	assertEqualFloats(t, []float64{0, 0, 0, 0, 0, 0}, x.Grad(), "initial gradient")
}

func TestNewCopiesData(t *testing.T) {
	data := []float64{1, 2, 3}
	x, err := New(data, Shape{3}, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	data[0] = 99
	assertEqualFloat64(t, 1, x.Data()[0], "buffer must be a copy of the input slice")
}

func TestNewSizeMismatch(t *testing.T) {
	if _, err := New([]float64{1, 2, 3}, Shape{2, 2}, false); err == nil {
		t.Error("expected error for data length 3 with shape [2, 2]")
	}
}

func TestNewInvalidShape(t *testing.T) {
	if _, err := New(nil, Shape{0}, false); err == nil {
		t.Error("expected error for zero dimension")
	}
}

func TestNewWithoutGrad(t *testing.T) {
	x, err := New([]float64{1, 2}, Shape{2}, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if x.RequiresGrad() {
		t.Error("tensor should not require gradients")
	}
	if x.Grad() != nil {
		t.Error("gradient buffer should be nil when requiresGrad is false")
	}
}

func TestNewOp(t *testing.T) {
	in := Ones(Shape{2}, true)
	fired := false
	out := NewOp([]float64{3, 4}, Shape{2}, true, []*Tensor{in}, func() { fired = true })

	if len(out.Inputs()) != 1 || out.Inputs()[0] != in {
		t.Error("NewOp should record its inputs as graph edges")
	}

	out.Backward()
	if !fired {
		t.Error("NewOp backward rule should fire during Backward")
	}
}

func TestNewOpSizeMismatchPanics(t *testing.T) {
	assertPanics(t, "NewOp with wrong data length", func() {
		NewOp([]float64{1, 2, 3}, Shape{2}, false, nil, nil)
	})
}

// Factory Tests

func TestZeros(t *testing.T) {
	x := Zeros(Shape{2, 2}, false)
	assertEqualFloats(t, []float64{0, 0, 0, 0}, x.Data(), "Zeros data")
}

func TestOnes(t *testing.T) {
	x := Ones(Shape{3}, false)
	assertEqualFloats(t, []float64{1, 1, 1}, x.Data(), "Ones data")
}

func TestFull(t *testing.T) {
	x := Full(Shape{2}, 3.14, false)
	assertEqualFloats(t, []float64{3.14, 3.14}, x.Data(), "Full data")
}

func TestZerosInvalidShapePanics(t *testing.T) {
	assertPanics(t, "Zeros with zero dimension", func() {
		Zeros(Shape{2, 0}, false)
	})
}

func TestRandnDeterministic(t *testing.T) {
	a := Randn(Shape{100}, false, rand.New(rand.NewSource(7)))
	b := Randn(Shape{100}, false, rand.New(rand.NewSource(7)))
	assertEqualFloats(t, a.Data(), b.Data(), "same seed must give same samples")
}

func TestRandnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	x := Randn(Shape{10000}, false, rng)

	mean := 0.0
	for _, v := range x.Data() {
		mean += v
	}
	mean /= float64(x.NumElements())

	variance := 0.0
	for _, v := range x.Data() {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(x.NumElements())

	if math.Abs(mean) > 0.05 {
		t.Errorf("sample mean = %v, want close to 0", mean)
	}
	if math.Abs(variance-1.0) > 0.05 {
		t.Errorf("sample variance = %v, want close to 1", variance)
	}
}

// Accessor Tests

func TestItem(t *testing.T) {
	x := Full(Shape{1}, 2.5, false)
	assertEqualFloat64(t, 2.5, x.Item(), "Item")
}

func TestItemPanicsOnMultiElement(t *testing.T) {
	assertPanics(t, "Item on multi-element tensor", func() {
		Ones(Shape{2}, false).Item()
	})
}

func TestAtSet(t *testing.T) {
	x, err := New([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, false)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	assertEqualFloat64(t, 1, x.At(0, 0), "At(0, 0)")
	assertEqualFloat64(t, 6, x.At(1, 2), "At(1, 2)")

	x.Set(99, 1, 0)
	assertEqualFloat64(t, 99, x.At(1, 0), "Set then At")
}

func TestAtPanics(t *testing.T) {
	x := Zeros(Shape{2, 3}, false)
	assertPanics(t, "wrong index count", func() { x.At(1) })
	assertPanics(t, "index out of range", func() { x.At(0, 3) })
	assertPanics(t, "negative index", func() { x.At(-1, 0) })
}

func TestClone(t *testing.T) {
	x, err := New([]float64{1, 2}, Shape{2}, true)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	y := x.Add(x)
	c := y.Clone()

	assertEqualFloats(t, y.Data(), c.Data(), "clone data")
	if c.Inputs() != nil {
		t.Error("clone must be a leaf with no graph edges")
	}

	c.Data()[0] = 99
	assertEqualFloat64(t, 2, y.Data()[0], "clone buffer must be independent")
}

func TestString(t *testing.T) {
	x := Ones(Shape{2}, true)
	x.SetName("weight")
	s := x.String()
	if !strings.Contains(s, "weight") {
		t.Errorf("String() = %q, want it to contain the name", s)
	}
	if !strings.Contains(s, "2") {
		t.Errorf("String() = %q, want it to contain the shape", s)
	}
}
