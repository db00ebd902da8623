// Package tensor implements the tensor node and the dynamic computational
// graph for the Darv ML Framework.
//
// A Tensor is the atomic unit of the graph: a flat float64 data buffer, an
// equal-length gradient buffer (present only when the tensor requires
// gradients), a shape, and a recorded backward rule. Operations are pure
// functions over existing tensors: each one computes its result eagerly and
// returns a new node whose backward rule knows how to push gradient
// contributions into the operation's inputs.
//
// Calling Backward on a node seeds its gradient buffer with ones, builds a
// topological order over its ancestry and replays the recorded backward
// rules in reverse, accumulating gradients into every ancestor exactly once
// per edge. Gradients into a shared ancestor sum, never overwrite.
//
// Example:
//
//	a := tensor.Ones(tensor.Shape{3, 2}, true)
//	b := tensor.Ones(tensor.Shape{3, 2}, true)
//	c := a.Add(b)
//	loss := c.Sum()
//	loss.Backward()
//	// a.Grad() and b.Grad() are now [1, 1, 1, 1, 1, 1]
//
// Execution is single-threaded and synchronous; no tensor is safe for
// concurrent mutation of its data or gradient buffers.
package tensor
