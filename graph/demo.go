package graph

// demoLayout holds the A–F demo nodes as fractions of the canvas size.
var demoLayout = []struct {
	id   string
	x, y float64
}{
	{"A", 0.2, 0.375},
	{"B", 0.5, 0.25},
	{"C", 0.8, 0.375},
	{"D", 0.5, 0.625},
	{"E", 0.2, 0.75},
	{"F", 0.8, 0.75},
}

// demoEdges is the weighted edge list of the demo graph.
var demoEdges = []struct {
	from, to string
	w        float64
}{
	{"A", "B", 4},
	{"A", "D", 2},
	{"B", "C", 5},
	{"B", "D", 1},
	{"C", "F", 3},
	{"D", "E", 3},
	{"D", "F", 6},
	{"E", "F", 2},
}

// Demo builds the six-node showcase graph with node positions scaled to a
// width×height canvas. Shortest A→F is A→D→E→F with cost 7.
func Demo(width, height float64) *Graph {
	g := New()
	for _, n := range demoLayout {
		// IDs are static and unique; AddNode cannot fail here.
		_ = g.AddNode(Node{ID: n.id, Label: n.id, X: width * n.x, Y: height * n.y})
	}
	for _, e := range demoEdges {
		_, _ = g.AddEdge(e.from, e.to, e.w)
	}
	return g
}
