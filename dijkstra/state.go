package dijkstra

import (
	"math"
	"sort"
	"strconv"
)

// Unreachable is the text FormatDistance prints for +Inf.
const Unreachable = "∞"

// Source returns the configured source node.
func (s State) Source() string { return s.source }

// Target returns the configured target node.
func (s State) Target() string { return s.target }

// StepCount returns the number of Advance calls applied so far.
func (s State) StepCount() int { return s.steps }

// Current returns the node processed by the latest step, or the source
// before the first step. The second result is false for a zero State.
func (s State) Current() (string, bool) {
	return s.current, s.current != ""
}

// Distance returns the tentative (or final, once visited) distance to id.
// Unknown IDs and unreachable nodes report +Inf.
func (s State) Distance(id string) float64 {
	d, ok := s.dist[id]
	if !ok {
		return math.Inf(1)
	}
	return d
}

// Distances returns a copy of the full distance table.
func (s State) Distances() map[string]float64 {
	out := make(map[string]float64, len(s.dist))
	for k, v := range s.dist {
		out[k] = v
	}
	return out
}

// Previous returns the predecessor of id on the best known path.
// The second result is false when id has no predecessor.
func (s State) Previous(id string) (string, bool) {
	p := s.prev[id]
	return p, p != ""
}

// IsVisited reports whether id has been finalized.
func (s State) IsVisited(id string) bool {
	if s.visited == nil {
		return false
	}
	return s.visited.Contains(id)
}

// Visited returns finalized nodes in the order they were finalized.
func (s State) Visited() []string {
	if s.visited == nil {
		return nil
	}
	vals := s.visited.Values()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.(string)
	}
	return out
}

// Frontier returns the unvisited nodes in pop order: ascending tentative
// distance, ties by graph insertion order. Its first element is the node
// the next Advance will finalize.
func (s State) Frontier() []string {
	out := append([]string(nil), s.frontier...)
	// frontier is already in insertion order, so a stable sort keeps the tie-break.
	sort.SliceStable(out, func(i, j int) bool {
		return s.dist[out[i]] < s.dist[out[j]]
	})
	return out
}

// Path returns the source → target path, or nil if it is not known (yet)
// or the target is unreachable.
func (s State) Path() []string {
	if len(s.path) == 0 {
		return nil
	}
	return append([]string(nil), s.path...)
}

// OnPath reports whether id lies on the reconstructed path.
func (s State) OnPath(id string) bool {
	for _, v := range s.path {
		if v == id {
			return true
		}
	}
	return false
}

// PathEdge reports whether from→to are consecutive on the reconstructed path.
func (s State) PathEdge(from, to string) bool {
	for i := 1; i < len(s.path); i++ {
		if s.path[i-1] == from && s.path[i] == to {
			return true
		}
	}
	return false
}

// Reachable reports whether a finite route to the target is known.
func (s State) Reachable() bool {
	return !math.IsInf(s.Distance(s.target), 1)
}

// FormatDistance renders d for display, using Unreachable for +Inf.
// Whole numbers print without a fractional part.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return Unreachable
	}
	return strconv.FormatFloat(d, 'f', -1, 64)
}
