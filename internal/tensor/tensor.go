package tensor

import (
	"fmt"
	"strings"
)

// Tensor is a node in the computational graph.
//
// It holds a flat float64 data buffer in row-major order, an equal-length
// gradient buffer (allocated only when requiresGrad is set), the shape, an
// optional display name, the list of input tensors this node was computed
// from, and the backward rule recorded by the operation that produced it.
//
// Shape and the requiresGrad flag are immutable after construction; only
// the contents of the data and gradient buffers mutate. A tensor may be an
// input to many downstream nodes, so the graph is a DAG, never a cycle: no
// operation ever takes its own output as an input.
type Tensor struct {
	data         []float64
	grad         []float64 // nil unless requiresGrad
	shape        Shape
	requiresGrad bool
	name         string

	inputs   []*Tensor // graph edges to the operation's inputs
	backward func()    // backward rule; nil for leaf tensors
}

// New creates a tensor from a data slice.
// The slice is copied into the tensor's buffer.
//
// Returns an error if the data length does not match the shape's element
// count or the shape contains a non-positive dimension.
func New(data []float64, shape Shape, requiresGrad bool) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	t := newNode(shape, requiresGrad)
	copy(t.data, data)
	return t, nil
}

// NewOp creates a tensor produced by a custom operation.
//
// The data slice becomes the node's buffer (not copied), inputs become the
// node's graph edges, and backward is recorded as the node's backward rule.
// The rule is only retained when the node requires gradients; a rule on a
// gradient-free node would never fire.
//
// This is the extension point the layer library uses for operations that
// are not part of the core set (bias broadcast, dropout masking, log).
// Panics if the data length does not match the shape.
func NewOp(data []float64, shape Shape, requiresGrad bool, inputs []*Tensor, backward func()) *Tensor {
	if shape.NumElements() != len(data) {
		panic(fmt.Sprintf("tensor: NewOp shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data)))
	}

	t := &Tensor{
		data:         data,
		shape:        shape.Clone(),
		requiresGrad: requiresGrad,
		inputs:       inputs,
	}
	if requiresGrad {
		t.grad = make([]float64, len(data))
		t.backward = backward
	}
	return t
}

// newNode allocates a zero-filled tensor with no graph edges.
func newNode(shape Shape, requiresGrad bool) *Tensor {
	n := shape.NumElements()
	t := &Tensor{
		data:         make([]float64, n),
		shape:        shape.Clone(),
		requiresGrad: requiresGrad,
	}
	if requiresGrad {
		t.grad = make([]float64, n)
	}
	return t
}

// newResult allocates the output node of an operation over the given inputs.
// The result requires gradients if any input does.
func newResult(shape Shape, inputs ...*Tensor) *Tensor {
	requiresGrad := false
	for _, in := range inputs {
		if in.requiresGrad {
			requiresGrad = true
			break
		}
	}
	t := newNode(shape, requiresGrad)
	t.inputs = inputs
	return t
}

// setBackward records the backward rule on an operation result.
// Gradient-free results discard the rule: nothing downstream can seed them.
func (t *Tensor) setBackward(fn func()) {
	if t.requiresGrad {
		t.backward = fn
	}
}

// Data returns the tensor's data buffer.
// The slice is live: modifications write through to the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Grad returns the tensor's gradient buffer, or nil if the tensor does not
// require gradients. The slice is live.
func (t *Tensor) Grad() []float64 {
	return t.grad
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// RequiresGrad returns true if this tensor participates in gradient
// computation.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Inputs returns the tensors this node was computed from.
// Leaf tensors return nil.
func (t *Tensor) Inputs() []*Tensor {
	return t.inputs
}

// Name returns the tensor's display name.
func (t *Tensor) Name() string {
	return t.name
}

// SetName sets a display name (e.g. "linear1.weight").
func (t *Tensor) SetName(name string) {
	t.name = name
}

// Item returns the value of a single-element tensor.
// Panics if the tensor holds more than one element.
func (t *Tensor) Item() float64 {
	if len(t.data) != 1 {
		panic(fmt.Sprintf("tensor: Item() only works for single-element tensors, got shape %v", t.shape))
	}
	return t.data[0]
}

// At returns the element at the given indices.
// Panics if the index count or any index is out of range.
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if the index count or any index is out of range.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

// offset converts multi-dimensional indices into a flat row-major offset.
func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("tensor: expected %d indices, got %d", len(t.shape), len(indices)))
	}
	offset := 0
	stride := 1
	for i := len(t.shape) - 1; i >= 0; i-- {
		idx := indices[i]
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("tensor: index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * stride
		stride *= t.shape[i]
	}
	return offset
}

// Clone creates a deep copy of the tensor's values.
// The copy is a leaf: it has no graph edges and no gradient history.
func (t *Tensor) Clone() *Tensor {
	c := newNode(t.shape, t.requiresGrad)
	copy(c.data, t.data)
	return c
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var b strings.Builder
	if t.name != "" {
		fmt.Fprintf(&b, "%s ", t.name)
	}
	fmt.Fprintf(&b, "Tensor(shape=%v, data=%v", t.shape, previewFloats(t.data))
	if t.requiresGrad {
		fmt.Fprintf(&b, ", grad=%v", previewFloats(t.grad))
	}
	b.WriteString(")")
	return b.String()
}

// previewFloats renders at most the first ten elements of a buffer.
func previewFloats(vals []float64) string {
	const limit = 10
	if len(vals) <= limit {
		return fmt.Sprintf("%.4f", vals)
	}
	return fmt.Sprintf("%.4f...", vals[:limit])
}
