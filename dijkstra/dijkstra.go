// Package dijkstra implements Dijkstra's single-source shortest-path search
// as an incremental stepper: Init builds the first snapshot, and every call to
// Advance finalizes exactly one frontier node and returns the next snapshot.
//
// The stepper is a pure reducer. It owns no timer and keeps no hidden state, so
// a playback driver can pause, single-step or discard a run at any point and a
// renderer can hold on to old snapshots for scrubbing.
//
// Notes on implementation choices:
//
//   - The frontier is a plain slice in graph insertion order and the minimum is
//     found by a linear scan. Graphs here are a handful of nodes; a heap would
//     only complicate the snapshot copy.
//   - Ties on tentative distance are broken by insertion order: the node that
//     was declared first in the graph is popped first. This decides which of
//     several equal-cost paths is reported.
//   - Relaxation uses strict “<”: an equal-cost alternative never replaces an
//     existing predecessor.
//   - Unreachable nodes keep distance +Inf. They are still popped once every
//     finite candidate is gone, but relaxing from +Inf never improves anything.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/katalvlaran/stepviz/graph"
)

// Init validates the inputs and returns the initial snapshot:
// distances[source]=0 and +Inf elsewhere, no predecessors, nothing visited,
// frontier = all nodes, current = source, stepCount = 0.
// When source == target the path is [source] immediately.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain at least one node (ErrEmptyGraph).
//  5. g must contain Source and Target (ErrVertexNotFound).
//
// Complexity: O(V + E) to snapshot the topology.
func Init(g *graph.Graph, opts ...Option) (State, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return State{}, ErrEmptySource
	}
	if cfg.Target == "" {
		return State{}, ErrEmptyTarget
	}
	if g == nil {
		return State{}, ErrNilGraph
	}
	if g.Len() == 0 {
		return State{}, ErrEmptyGraph
	}
	if !g.HasNode(cfg.Source) {
		return State{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, cfg.Source)
	}
	if !g.HasNode(cfg.Target) {
		return State{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, cfg.Target)
	}

	// 3) Snapshot topology
	topo := &topology{
		order: g.NodeIDs(),
		out:   make(map[string][]arc),
	}
	for _, e := range g.Edges() {
		topo.out[e.From] = append(topo.out[e.From], arc{to: e.To, weight: e.Weight})
	}

	// 4) Initial distances and predecessors
	V := len(topo.order)
	s := State{
		topo:     topo,
		source:   cfg.Source,
		target:   cfg.Target,
		dist:     make(map[string]float64, V),
		prev:     make(map[string]string, V),
		visited:  linkedhashset.New(),
		current:  cfg.Source,
		frontier: make([]string, V),
	}
	copy(s.frontier, topo.order)
	for _, v := range topo.order {
		s.dist[v] = math.Inf(1)
		s.prev[v] = ""
	}
	s.dist[cfg.Source] = 0

	// 5) Trivial path
	if cfg.Source == cfg.Target {
		s.path = []string{cfg.Source}
	}

	return s, nil
}

// Advance applies one step and returns the next snapshot.
//
//   - Frontier empty: attempt path reconstruction from target; stepCount+1.
//   - Otherwise: pop the frontier node u with minimum distance (ties: insertion
//     order), mark it visited, relax every u→v with v unvisited using strict
//     “<”, set current=u, reconstruct immediately if u == target; stepCount+1.
//
// A State for which Done already reports true is returned unchanged, so a
// driver that fires one extra tick cannot disturb a finished run.
//
// Complexity: O(V + deg(u)) time, O(V) to copy the snapshot.
func Advance(s State) (State, error) {
	if s.topo == nil {
		return s, ErrUninitialized
	}
	if Done(s) {
		return s, nil
	}

	next := s.clone()
	next.steps++

	// 1) Exhausted frontier: final reconstruction attempt.
	if len(next.frontier) == 0 {
		next.path = next.reconstruct()
		next.attempted = true
		return next, nil
	}

	// 2) Pop minimum; first-declared wins on ties because the scan is strict.
	best := 0
	for i := 1; i < len(next.frontier); i++ {
		if next.dist[next.frontier[i]] < next.dist[next.frontier[best]] {
			best = i
		}
	}
	u := next.frontier[best]
	next.frontier = append(next.frontier[:best], next.frontier[best+1:]...)

	// 3) Finalize u.
	next.visited.Add(u)
	next.current = u

	// 4) Relax outgoing arcs into unvisited nodes.
	var alt float64
	for _, a := range next.topo.out[u] {
		if next.visited.Contains(a.to) {
			continue
		}
		alt = next.dist[u] + a.weight
		if alt < next.dist[a.to] {
			next.dist[a.to] = alt
			next.prev[a.to] = u
		}
	}

	// 5) Target finalized: its path can no longer improve.
	if u == next.target {
		next.path = next.reconstruct()
	}

	return next, nil
}

// Done reports whether the search has reached a terminal snapshot: the
// target has been finalized, or the frontier is empty and a reconstruction
// attempt has been made.
func Done(s State) bool {
	if s.topo == nil {
		return false
	}
	if s.visited.Contains(s.target) {
		return true
	}
	return len(s.frontier) == 0 && s.attempted
}

// Run initializes a search and advances it to completion, returning every
// snapshot including the initial one. It is the eager counterpart of
// Init/Advance, used for replay and scrubbing.
//
// Complexity: O(V) steps, each O(V + deg); total O(V² + E) time and O(V²) space.
func Run(g *graph.Graph, opts ...Option) ([]State, error) {
	s, err := Init(g, opts...)
	if err != nil {
		return nil, err
	}

	trace := []State{s}
	for !Done(s) {
		if s, err = Advance(s); err != nil {
			return nil, err
		}
		trace = append(trace, s)
	}
	return trace, nil
}

// reconstruct walks prev backward from target. It returns the path oriented
// source → target, or nil when the walk does not end at source.
func (s State) reconstruct() []string {
	var rev []string
	seen := make(map[string]bool, len(s.prev))
	for v := s.target; v != ""; v = s.prev[v] {
		if seen[v] {
			return nil
		}
		seen[v] = true
		rev = append(rev, v)
	}
	if len(rev) == 0 || rev[len(rev)-1] != s.source {
		return nil
	}

	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}

// clone deep-copies every mutable field; topo is shared because it is immutable.
func (s State) clone() State {
	c := s
	c.dist = make(map[string]float64, len(s.dist))
	for k, v := range s.dist {
		c.dist[k] = v
	}
	c.prev = make(map[string]string, len(s.prev))
	for k, v := range s.prev {
		c.prev[k] = v
	}
	c.visited = linkedhashset.New(s.visited.Values()...)
	c.frontier = append([]string(nil), s.frontier...)
	c.path = append([]string(nil), s.path...)
	return c
}
