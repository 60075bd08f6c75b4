// Package dijkstra_test provides examples demonstrating how to drive the stepper.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/graph"
)

// ExampleAdvance single-steps the showcase graph, printing the node finalized
// by every step and the path once it is known.
func ExampleAdvance() {
	// 1) Build the six-node showcase graph (positions do not matter here).
	g := graph.Demo(500, 400)

	// 2) Initialize a search A → F.
	s, err := dijkstra.Init(g, dijkstra.Source("A"), dijkstra.Target("F"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Advance until the stepper reports a terminal snapshot.
	for !dijkstra.Done(s) {
		s, _ = dijkstra.Advance(s)
		cur, _ := s.Current()
		fmt.Printf("step %d: %s d=%s\n", s.StepCount(), cur, dijkstra.FormatDistance(s.Distance(cur)))
	}

	// 4) Print the reconstructed path.
	fmt.Println(strings.Join(s.Path(), " → "))
	// Output:
	// step 1: A d=0
	// step 2: D d=2
	// step 3: B d=4
	// step 4: E d=5
	// step 5: F d=7
	// A → D → E → F
}

// ExampleRun shows the eager form and an unreachable target.
func ExampleRun() {
	g := graph.New()
	_, _ = g.AddEdge("A", "B", 1)
	_ = g.AddNode(graph.Node{ID: "Z"})

	trace, err := dijkstra.Run(g, dijkstra.Source("A"), dijkstra.Target("Z"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	last := trace[len(trace)-1]
	fmt.Println(len(trace), last.Path() == nil, dijkstra.FormatDistance(last.Distance("Z")))
	// Output: 4 true ∞
}
