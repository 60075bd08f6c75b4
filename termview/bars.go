package termview

import (
	"strings"
)

const (
	barFull  = "█"
	barEmpty = " "
)

// Bars draws values as a vertical bar chart height rows tall, one column per
// value. Columns listed in highlight (for instance sorting.Changed output) use
// the Highlight style. Non-positive values draw as empty columns.
func (t Theme) Bars(values []int, highlight []int, height int) string {
	if height <= 0 || len(values) == 0 {
		return ""
	}

	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	hl := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		hl[i] = true
	}

	// 1) Scale every value to [0, height], rounding up so small values stay visible.
	cols := make([]int, len(values))
	if max > 0 {
		for i, v := range values {
			if v > 0 {
				cols[i] = (v*height + max - 1) / max
			}
		}
	}

	// 2) Emit rows top-down.
	var b strings.Builder
	for row := height; row >= 1; row-- {
		for i, h := range cols {
			switch {
			case h < row:
				b.WriteString(barEmpty)
			case hl[i]:
				b.WriteString(t.Highlight.Render(barFull))
			default:
				b.WriteString(t.Bar.Render(barFull))
			}
		}
		if row > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
