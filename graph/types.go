package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is empty.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called for an ID that already exists.
	ErrDuplicateNode = errors.New("graph: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrSyntax indicates the graph DSL could not be parsed.
	ErrSyntax = errors.New("graph: syntax error")
)

// Node is a vertex of the graph.
//
// ID uniquely identifies the node. Label is what a renderer prints; it
// defaults to ID when empty. X and Y are rendering coordinates supplied by the
// caller and are never read by the search.
type Node struct {
	ID    string
	Label string
	X     float64
	Y     float64
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// ID is a stable identifier "e1", "e2", ... in insertion order.
	ID string

	// From is the source node ID.
	From string

	// To is the destination node ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Graph is an insertion-ordered directed graph.
//
// order holds node IDs in declaration order; out holds outgoing edges per
// node, also in declaration order. mu guards every field.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]*Node
	order []string
	out   map[string][]*Edge
	edges []*Edge

	nextEdgeID int
}

// New creates an empty Graph.
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		out:   make(map[string][]*Edge),
	}
}
