package termview

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/dijkstra"
	"github.com/katalvlaran/stepviz/graph"
)

// Graph renders one shortest-path step as a node table followed by the edge
// list and the path line. Style priority per row: on path, current, visited.
func (t Theme) Graph(g *graph.Graph, s dijkstra.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", t.Title.Render(fmt.Sprintf("%s → %s  step %d", s.Source(), s.Target(), s.StepCount())))
	fmt.Fprintf(&b, "%s\n", t.Muted.Render(fmt.Sprintf("%-6s %-6s %-6s %s", "NODE", "DIST", "PREV", "STATE")))

	cur, _ := s.Current()
	for _, n := range g.Nodes() {
		prev, ok := s.Previous(n.ID)
		if !ok {
			prev = "-"
		}
		row := fmt.Sprintf("%-6s %-6s %-6s %s",
			n.Label, dijkstra.FormatDistance(s.Distance(n.ID)), prev, nodeState(s, n.ID, cur))

		switch {
		case s.OnPath(n.ID):
			row = t.Path.Render(row)
		case n.ID == cur:
			row = t.Current.Render(row)
		case s.IsVisited(n.ID):
			row = t.Visited.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	var edges []string
	for _, e := range g.Edges() {
		label := fmt.Sprintf("%s→%s %s", e.From, e.To, dijkstra.FormatDistance(e.Weight))
		if s.PathEdge(e.From, e.To) {
			label = t.Path.Render(label)
		}
		edges = append(edges, label)
	}
	fmt.Fprintf(&b, "%s %s\n", t.Muted.Render("edges:"), strings.Join(edges, ", "))
	fmt.Fprintf(&b, "%s %s", t.Muted.Render("path:"), t.pathLine(s))
	return b.String()
}

func (t Theme) pathLine(s dijkstra.State) string {
	p := s.Path()
	switch {
	case len(p) > 0:
		return t.Path.Render(fmt.Sprintf("%s (%s)",
			strings.Join(p, " → "), dijkstra.FormatDistance(s.Distance(s.Target()))))
	case dijkstra.Done(s):
		return t.End.Render("unreachable")
	default:
		return t.Muted.Render("searching")
	}
}

func nodeState(s dijkstra.State, id, cur string) string {
	var tags []string
	if id == s.Source() {
		tags = append(tags, "start")
	}
	if id == s.Target() {
		tags = append(tags, "end")
	}
	switch {
	case id == cur && s.StepCount() > 0:
		tags = append(tags, "current")
	case s.IsVisited(id):
		tags = append(tags, "visited")
	}
	return strings.Join(tags, " ")
}

// Legend lists the colors used by Graph.
func (t Theme) Legend() string {
	return strings.Join([]string{
		t.Start.Render("start"),
		t.End.Render("end"),
		t.Current.Render("current"),
		t.Visited.Render("visited"),
		t.Path.Render("path"),
	}, "  ")
}
