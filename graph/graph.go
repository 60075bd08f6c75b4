package graph

import (
	"fmt"
	"math"
	"strconv"
)

// AddNode declares a node.
//
// Steps:
//  1. Reject an empty ID (ErrEmptyNodeID).
//  2. Reject a duplicate ID (ErrDuplicateNode).
//  3. Default Label to ID, store a private copy and append to the order.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	if n.Label == "" {
		n.Label = n.ID
	}
	g.addNodeLocked(n)

	return nil
}

// ensureNode declares id with default attributes if it is missing.
// Caller must hold g.mu for writing.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.addNodeLocked(Node{ID: id, Label: id})
}

func (g *Graph) addNodeLocked(n Node) {
	cp := n
	g.nodes[n.ID] = &cp
	g.order = append(g.order, n.ID)
}

// AddEdge adds the directed edge from → to with the given weight and returns
// its ID. Missing endpoints are declared on the fly, in from-then-to order.
// Parallel edges are allowed; the search simply relaxes each of them.
//
// Steps:
//  1. Validate IDs (ErrEmptyNodeID).
//  2. Validate weight: finite (ErrBadWeight) and ≥ 0 (ErrNegativeWeight).
//  3. Ensure endpoints, allocate "eN" ID, append to out[from] and the catalog.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: edge %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: edge %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure endpoints exist
	g.ensureNode(from)
	g.ensureNode(to)

	// 3) Insert
	g.nextEdgeID++
	e := &Edge{
		ID:     "e" + strconv.Itoa(g.nextEdgeID),
		From:   from,
		To:     to,
		Weight: weight,
	}
	g.out[from] = append(g.out[from], e)
	g.edges = append(g.edges, e)

	return e.ID, nil
}

// HasNode reports whether id is declared.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// HasEdge reports whether at least one edge from → to exists.
// Complexity: O(out-degree(from)).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}
	return false
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	return *n, nil
}

// Len returns the number of nodes.
// Complexity: O(1).
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// NodeIDs returns node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.order))
	copy(ids, g.order)
	return ids
}

// Nodes returns copies of all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	return out
}

// Outgoing returns copies of the edges leaving id, in insertion order.
// Complexity: O(out-degree(id)).
func (g *Graph) Outgoing(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}
	src := g.out[id]
	out := make([]Edge, len(src))
	for i, e := range src {
		out[i] = *e
	}
	return out, nil
}

// Index returns the insertion position of id, or -1 when id is missing.
// It agrees with the order of NodeIDs.
// Complexity: O(V).
func (g *Graph) Index(id string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i, v := range g.order {
		if v == id {
			return i
		}
	}
	return -1
}
