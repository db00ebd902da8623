package tensor

// Backward runs reverse-mode gradient propagation from this node.
//
// The node's own gradient buffer is seeded with a broadcast unit seed:
// every element is set to 1.0 regardless of the node's rank. Callers
// should only invoke Backward on a single-element (loss) tensor for the
// gradients to be meaningful; seeding a multi-element node spreads the
// uniform seed across all of its elements.
//
// Propagation builds a topological order by depth-first traversal over
// the input edges, visiting each distinct node exactly once, and then
// executes every node's backward rule in the reverse of that order, so
// each node's upstream gradient is fully accumulated before its own rule
// fires. Contributions into a shared ancestor sum.
//
// The traversal is recursive; the maximum depth equals the longest
// dependency chain in the graph. Panics if the node does not require
// gradients (there is no buffer to seed).
func (t *Tensor) Backward() {
	if !t.requiresGrad {
		panic("tensor: Backward called on a tensor that does not require gradients")
	}

	visited := make(map[*Tensor]struct{})
	var order []*Tensor

	var build func(n *Tensor)
	build = func(n *Tensor) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}
		for _, in := range n.inputs {
			build(in)
		}
		order = append(order, n)
	}
	build(t)

	for i := range t.grad {
		t.grad[i] = 1.0
	}

	for i := len(order) - 1; i >= 0; i-- {
		if fn := order[i].backward; fn != nil {
			fn()
		}
	}
}

// ZeroGrad resets the gradient buffer of this node and every ancestor
// reachable through input edges.
//
// A shared ancestor can be reached via multiple paths; the traversal
// keeps a visited set so each node is zeroed exactly once, making this a
// single linear pass over the ancestry. The walk uses an explicit
// worklist, so arbitrarily deep graphs do not consume call stack.
func (t *Tensor) ZeroGrad() {
	visited := make(map[*Tensor]struct{})
	stack := []*Tensor{t}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[n]; ok {
			continue
		}
		visited[n] = struct{}{}

		for i := range n.grad {
			n.grad[i] = 0.0
		}
		stack = append(stack, n.inputs...)
	}
}
