// Package dijkstra defines the options, sentinel errors and snapshot type of
// the incremental shortest-path stepper.
//
// Options:
//
//	– Source: ID of the starting node (must be non-empty and present in the graph).
//	– Target: ID of the node whose path is reconstructed (non-empty and present).
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the source ID is empty.
//	– ErrEmptyTarget     if the target ID is empty.
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrEmptyGraph      if the graph has no nodes.
//	– ErrVertexNotFound  if the source or target is missing from the graph.
//	– ErrUninitialized   if Advance receives a zero State that did not come from Init.
package dijkstra

import (
	"errors"

	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Sentinel errors returned by the stepper.
var (
	// ErrEmptySource indicates that the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrEmptyTarget indicates that the provided target node ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target vertex ID is empty")

	// ErrNilGraph indicates that a nil *graph.Graph was passed to Init.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates that the graph has no nodes to search.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrVertexNotFound indicates that the source or target does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUninitialized indicates a State that was not produced by Init.
	ErrUninitialized = errors.New("dijkstra: state not initialized")
)

// Options configures the stepper.
//
// Source – starting node ID (must be non-empty and present in the graph).
// Target – node whose shortest path is reported (non-empty and present).
type Options struct {
	Source string // The ID of the source node
	Target string // The ID of the target node
}

// Option represents a functional option for configuring Init.
type Option func(*Options)

// Source sets the Source field of Options to the given string.
// Must be called to specify the starting node ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target sets the Target field of Options to the given string.
// Must be called to specify the node whose path is reconstructed.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// DefaultOptions returns an Options struct with empty source and target.
// Both must be supplied through Source and Target before Init succeeds.
func DefaultOptions() Options {
	return Options{}
}

// arc is an outgoing edge captured at Init.
type arc struct {
	to     string
	weight float64
}

// topology is an immutable copy of the graph taken at Init and shared by
// every State derived from it. Later mutations of the source graph do not
// leak into a running search.
type topology struct {
	order []string         // node IDs in insertion order (tie-break key)
	out   map[string][]arc // outgoing arcs in insertion order
}

// State is one immutable snapshot of the search.
//
// Fields are unexported so a renderer holding a State cannot corrupt it;
// read it through the accessor methods in state.go. Advance always returns a
// fresh State and never mutates its argument.
type State struct {
	topo *topology

	source string
	target string

	dist    map[string]float64 // tentative or final distance from source
	prev    map[string]string  // predecessor on the best known path; "" = none
	visited *linkedhashset.Set // finalized nodes, in finalization order
	current string             // node processed by the latest step; "" = none

	frontier []string // unvisited nodes in insertion order
	path     []string // source → target, empty until found
	steps    int      // number of Advance calls applied

	attempted bool // a reconstruction ran after the frontier emptied
}
