package digraph

import "fmt"

// New creates a Graph with n isolated nodes [0, n).
// Returns ErrNegativeNodeCount if n < 0.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}

	return &Graph{
		n:   n,
		adj: make([][]int, n),
		in:  make([]int, n),
	}, nil
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of edges, parallel edges and self-loops included.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge appends a directed edge from→to. Parallel edges are kept as
// separate entries and from == to produces a self-loop.
// Returns ErrNodeOutOfRange, leaving the graph untouched, if either
// endpoint lies outside [0, N).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	// 1. Validate both endpoints before touching any state
	if err := g.check(from); err != nil {
		return fmt.Errorf("digraph: AddEdge(%d, %d) source: %w", from, to, err)
	}
	if err := g.check(to); err != nil {
		return fmt.Errorf("digraph: AddEdge(%d, %d) target: %w", from, to, err)
	}

	// 2. Record the edge and keep the in-degree counter in step
	g.adj[from] = append(g.adj[from], to)
	g.in[to]++
	g.edges++

	return nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph) OutDegree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// InDegree returns the number of edges entering v.
func (g *Graph) InDegree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return g.in[v], nil
}

// Degree returns in-degree + out-degree of v. A self-loop counts twice.
func (g *Graph) Degree(v int) (int, error) {
	if err := g.check(v); err != nil {
		return 0, err
	}

	return g.in[v] + len(g.adj[v]), nil
}

// Neighbors returns a copy of v's destination list in insertion order.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.check(v); err != nil {
		return nil, err
	}

	return append([]int(nil), g.adj[v]...), nil
}

// Transpose returns a new Graph with the same node count and every edge
// reversed. The receiver is not modified.
// Complexity: Time O(N+E), Memory O(N+E).
func (g *Graph) Transpose() *Graph {
	t := &Graph{
		n:     g.n,
		edges: g.edges,
		adj:   make([][]int, g.n),
		in:    make([]int, g.n),
	}

	// pre-size each reversed list: out-degree in t equals in-degree in g
	var v int
	for v = 0; v < g.n; v++ {
		if g.in[v] > 0 {
			t.adj[v] = make([]int, 0, g.in[v])
		}
		t.in[v] = len(g.adj[v])
	}

	var to int
	for v = 0; v < g.n; v++ {
		for _, to = range g.adj[v] {
			t.adj[to] = append(t.adj[to], v)
		}
	}

	return t
}

// check reports whether v is a valid node id.
func (g *Graph) check(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrNodeOutOfRange, v, g.n)
	}

	return nil
}
