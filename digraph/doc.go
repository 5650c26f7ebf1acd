// Package digraph implements a compact directed multigraph over dense
// integer node ids and the Eulerian-circuit test built on top of it.
//
// What:
//
//   - Graph: fixed node count N, ordered adjacency lists adj[v] (parallel
//     edges and self-loops allowed), cached in-degree counters.
//   - Transpose: a new graph with every edge reversed.
//   - Reachable: explicit-stack depth-first traversal from a root.
//   - IsStronglyConnected: two-pass reachability test (forward graph, then
//     transposed graph, same root); every one of the N nodes must be reached.
//   - IsEulerianCircuit: strongly connected AND in-degree == out-degree for
//     every node.
//   - Analyze: the same checks, reported piece by piece.
//
// Why:
//
//	A directed graph has an Eulerian circuit iff its non-isolated vertices
//	form one strongly connected component and every vertex is balanced.
//	Checking that characterization costs two traversals, O(N+E), and never
//	needs the circuit itself.
//
// Complexity:
//
//   - AddEdge:              O(1) amortized
//   - Transpose:            Time O(N+E), Memory O(N+E)
//   - Reachable:            Time O(N+E), Memory O(N)
//   - IsStronglyConnected:  Time O(N+E), Memory O(N+E)
//   - IsEulerianCircuit:    Time O(N+E), Memory O(N+E)
//
// Errors:
//
//   - ErrNegativeNodeCount  New called with n < 0
//   - ErrNodeOutOfRange     node id outside [0, N)
//
// A Graph is not safe for concurrent mutation. Once populated it may be
// queried from several goroutines.
package digraph
