package graph_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/graph"
)

// ExampleParse builds a tiny graph from the DSL and lists its edges.
func ExampleParse() {
	g, err := graph.Parse(`
node S (0, 0)
S -> T : 1.5
T -> S : 2
`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s %s→%s %.1f\n", e.ID, e.From, e.To, e.Weight)
	}
	// Output:
	// e1 S→T 1.5
	// e2 T→S 2.0
}
