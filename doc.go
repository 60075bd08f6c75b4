// Package stepviz is a set of step-recording algorithm engines built for
// animation: every algorithm exposes its progress as a sequence of immutable
// snapshots that a timer can replay one frame at a time.
//
// 🚀 What is in stepviz?
//
//	• graph/     — small weighted directed graphs + a tiny edge-list DSL
//	• dijkstra/  — incremental shortest path, one finalized node per Advance
//	• neural/    — 2-H-1 sigmoid network, one online-training epoch per Step
//	• sorting/   — eager bubble/merge sort traces with full array snapshots
//	• playback/  — the timer: a pausable, cancellable Driver and Frames
//	• termview/  — lipgloss renderers for bars, node tables and boundaries
//	• rng/       — deterministic random sources for weights and demo arrays
//	• cmd/stepviz — the `dijkstra`, `sort` and `train` commands
//
// ✨ Design in one line: engines are pure reducers (state in, state out);
// only playback owns time.
//
//	s, _ := dijkstra.Init(graph.Demo(400, 300), dijkstra.Source("A"), dijkstra.Target("F"))
//	for !dijkstra.Done(s) {
//	    s, _ = dijkstra.Advance(s)
//	}
//	fmt.Println(s.Path()) // [A D E F]
//
// Quick start:
//
//	go run github.com/katalvlaran/stepviz/cmd/stepviz sort --algo both
package stepviz
