// Package dijkstra provides a step-by-step rendition of Dijkstra's
// shortest-path algorithm for animation.
//
// Overview:
//
//   - Init validates a graph and a source/target pair and returns the first
//     snapshot. Advance finalizes one frontier node per call and returns the
//     next snapshot. Done tells the driver when to stop.
//   - Snapshots (State) are immutable values. Keep as many as you like; a
//     renderer reads them through accessors, never through shared maps.
//   - Run is the eager form: it returns the full trace for replay.
//
// When to use:
//
//   - Anywhere a search must be paused, single-stepped or replayed at human
//     speed: teaching material, demos, debugging of small routing graphs.
//   - For one-shot shortest paths on large graphs a heap-based batch
//     implementation is the better tool.
//
// Step semantics:
//
//   - Initial: distances[source]=0, +Inf elsewhere; frontier = every node;
//     current = source; path = [] (or [source] when source == target).
//   - Each step pops the minimum-distance frontier node (ties: the node declared
//     first in the graph), marks it visited, relaxes u→v for unvisited v with a
//     strict “<”, and reconstructs the path as soon as the target is popped.
//   - When the frontier is empty one extra step attempts reconstruction; an
//     unreachable target ends with Path() == nil and Distance(target) == +Inf.
//
// Invariants (checked by the tests):
//
//   - Distance(source) == 0 in every snapshot.
//   - Visited() only grows; a visited node's distance never changes again.
//   - A non-empty Path() starts at the source, ends at the target and follows
//     graph edges.
//
// Complexity:
//
//   - Time:  O(V + deg(u)) per step, O(V² + E) for a complete run.
//   - Space: O(V) per snapshot.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyTarget: the corresponding option was not set.
//   - ErrNilGraph: a nil *graph.Graph was passed.
//   - ErrEmptyGraph: the graph has no nodes.
//   - ErrVertexNotFound: source or target is not in the graph (wrapped with the ID).
//   - ErrUninitialized: Advance received a zero State.
//
// Example:
//
//	s, err := dijkstra.Init(graph.Demo(500, 400), dijkstra.Source("A"), dijkstra.Target("F"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for !dijkstra.Done(s) {
//	    s, _ = dijkstra.Advance(s)
//	}
//	fmt.Println(s.Path(), dijkstra.FormatDistance(s.Distance("F")))
package dijkstra
