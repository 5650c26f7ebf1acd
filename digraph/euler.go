package digraph

// Reachable runs a depth-first traversal from root and returns the visited
// mask: visited[v] is true iff v is reachable from root along directed edges.
// The traversal keeps its own stack, so its depth is independent of the
// goroutine stack. Returns ErrNodeOutOfRange for an invalid root.
// Complexity: Time O(N+E), Memory O(N).
func (g *Graph) Reachable(root int) ([]bool, error) {
	if err := g.check(root); err != nil {
		return nil, err
	}

	return g.reach(root), nil
}

// reach is Reachable without validation; root must be in [0, N).
func (g *Graph) reach(root int) []bool {
	visited := make([]bool, g.n)
	visited[root] = true
	stack := []int{root}

	var u, v int
	for len(stack) > 0 {
		// 1. Pop the most recently discovered node
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. Push every undiscovered destination
		for _, v = range g.adj[u] {
			if !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	return visited
}

// root returns the first node with non-zero total degree, or 0 when every
// node is isolated. It returns -1 for the empty graph.
func (g *Graph) root() int {
	if g.n == 0 {
		return -1
	}
	for v := 0; v < g.n; v++ {
		if len(g.adj[v]) > 0 || g.in[v] > 0 {
			return v
		}
	}

	return 0
}

// IsStronglyConnected reports whether every node reaches every other node.
//
// Both the graph and its transpose are traversed from the same root (the
// first node with non-zero degree); every one of the N nodes, isolated
// ones included, must be visited in both passes. The empty graph is
// vacuously connected.
// Complexity: Time O(N+E), Memory O(N+E).
func (g *Graph) IsStronglyConnected() bool {
	r := g.root()
	if r < 0 {
		return true
	}

	// 1. Forward pass: root must reach everything
	if !all(g.reach(r)) {
		return false
	}

	// 2. Backward pass: everything must reach root
	return all(g.Transpose().reach(r))
}

// IsBalanced reports whether in-degree equals out-degree for every node.
// Complexity: O(N).
func (g *Graph) IsBalanced() bool {
	for v := 0; v < g.n; v++ {
		if g.in[v] != len(g.adj[v]) {
			return false
		}
	}

	return true
}

// IsEulerianCircuit reports whether g has a closed walk that uses every edge
// exactly once: g must be strongly connected and every node balanced.
// Complexity: Time O(N+E), Memory O(N+E).
func (g *Graph) IsEulerianCircuit() bool {
	return g.IsStronglyConnected() && g.IsBalanced()
}

// Analyze runs the same checks as IsEulerianCircuit but keeps every
// intermediate result. Unlike IsEulerianCircuit it never short-circuits.
// Complexity: Time O(N+E), Memory O(N+E).
func (g *Graph) Analyze() Analysis {
	a := Analysis{
		Nodes: g.n,
		Edges: g.edges,
		Root:  g.root(),
	}

	// 1. Connectivity, both directions
	if a.Root < 0 {
		a.StronglyConnected = true
	} else {
		a.ForwardReach = g.reach(a.Root)
		a.BackwardReach = g.Transpose().reach(a.Root)
		a.StronglyConnected = all(a.ForwardReach) && all(a.BackwardReach)
	}

	// 2. Degree balance
	for v := 0; v < g.n; v++ {
		if g.in[v] != len(g.adj[v]) {
			a.Unbalanced = append(a.Unbalanced, Imbalance{Node: v, In: g.in[v], Out: len(g.adj[v])})
		}
	}

	a.Eulerian = a.StronglyConnected && len(a.Unbalanced) == 0

	return a
}

// all reports whether every entry of mask is true.
func all(mask []bool) bool {
	for _, ok := range mask {
		if !ok {
			return false
		}
	}

	return true
}
