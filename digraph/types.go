package digraph

import "errors"

var (
	// ErrNegativeNodeCount is returned by New when the node count is negative.
	ErrNegativeNodeCount = errors.New("digraph: negative node count")

	// ErrNodeOutOfRange indicates a node id outside [0, N).
	ErrNodeOutOfRange = errors.New("digraph: node id out of range")
)

// Graph is a directed multigraph whose nodes are the integers [0, N).
//
// adj[v] lists the destinations of v's outgoing edges in insertion order;
// repetitions are parallel edges. in[v] counts edges entering v and is kept
// in step with adj by AddEdge.
type Graph struct {
	n     int     // node count
	edges int     // total edge count
	adj   [][]int // adj[from] = destinations, insertion order
	in    []int   // in[v] = in-degree of v
}

// Imbalance records a node whose in-degree differs from its out-degree.
type Imbalance struct {
	Node int
	In   int
	Out  int
}

// Analysis is the itemized outcome of the Eulerian-circuit test.
type Analysis struct {
	// Nodes and Edges describe the graph size.
	Nodes int
	Edges int

	// Root is the node both traversals started from (-1 when Nodes == 0).
	Root int

	// ForwardReach[v] reports whether v was reached from Root on the graph;
	// BackwardReach[v] the same on its transpose.
	ForwardReach  []bool
	BackwardReach []bool

	// StronglyConnected is true when both traversals reached every node.
	StronglyConnected bool

	// Unbalanced lists nodes with In != Out, in ascending node order.
	Unbalanced []Imbalance

	// Eulerian is StronglyConnected && len(Unbalanced) == 0.
	Eulerian bool
}
