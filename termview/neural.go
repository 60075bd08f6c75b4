package termview

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepviz/neural"
)

// Boundary draws a decision-boundary grid from neural.Boundary: '▓' where the
// output is at least 0.5 (class 1) and '░' below. Points overlay the grid as
// 'x' (label 1) or 'o' (label 0).
func (t Theme) Boundary(grid [][]float64, points []neural.Point) string {
	rows := len(grid)
	if rows == 0 || len(grid[0]) == 0 {
		return ""
	}
	cols := len(grid[0])

	marks := make(map[[2]int]int, len(points))
	for _, p := range points {
		r, c := neural.Cell(p, cols, rows)
		marks[[2]int{r, c}] = p.Label
	}

	var b strings.Builder
	for r, line := range grid {
		for c, v := range line {
			if label, ok := marks[[2]int{r, c}]; ok {
				if label == 1 {
					b.WriteString(t.Class1.Render("x"))
				} else {
					b.WriteString(t.Class0.Render("o"))
				}
				continue
			}
			if v >= 0.5 {
				b.WriteString(t.Class1.Render("▓"))
			} else {
				b.WriteString(t.Class0.Render("░"))
			}
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Network lists connections one per line, "x→h0  +0.532", colored by sign.
func (t Theme) Network(conns []neural.Connection) string {
	lines := make([]string, 0, len(conns))
	for _, c := range conns {
		var from, to string
		if c.Layer == 0 {
			from, to = inputName(c.From), fmt.Sprintf("h%d", c.To)
		} else {
			from, to = fmt.Sprintf("h%d", c.From), "o"
		}
		line := fmt.Sprintf("%-3s→ %-3s %+.3f", from, to, c.Weight)
		if c.Weight >= 0 {
			line = t.Positive.Render(line)
		} else {
			line = t.Negative.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func inputName(i int) string {
	switch i {
	case 0:
		return "x"
	case 1:
		return "y"
	default:
		return fmt.Sprintf("in%d", i)
	}
}
