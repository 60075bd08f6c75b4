// Package graph provides the small weighted, directed graph consumed by the
// shortest-path stepper.
//
// The Graph G = (V,E) is narrow compared to a general-purpose
// graph library:
//
//   - Edges are directed as stored and are never mirrored. An undirected
//     connection is two edges.
//   - Weights are float64 and must be finite and non-negative.
//   - Nodes carry a Label and an (X, Y) position. Positions are rendering hints
//     only; no algorithm reads them.
//   - Iteration is deterministic: Nodes(), NodeIDs(), Edges() and Outgoing()
//     return elements in insertion order. The stepper relies on this for its
//     frontier tie-break.
//
// Construction:
//
//	g := graph.New()
//	_ = g.AddNode(graph.Node{ID: "A", Label: "A", X: 100, Y: 150})
//	_, _ = g.AddEdge("A", "B", 4) // B is auto-declared
//
// Or from text, using the edge-list DSL understood by Parse:
//
//	# comment
//	node A (100, 150)
//	A -> B : 4
//	B -> C : 2.5
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - AddNode called twice for one ID.
//	ErrNodeNotFound   - query referenced a missing node.
//	ErrNegativeWeight - edge weight < 0.
//	ErrBadWeight      - edge weight is NaN or ±Inf.
//	ErrSyntax         - Parse could not read the DSL.
//
// Concurrency: a Graph is safe for concurrent readers and a single writer via
// an internal sync.RWMutex, so a renderer may read while a driver advances a
// search over it.
package graph
