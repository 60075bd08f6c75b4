package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stat is one labeled counter in a status line.
type Stat struct {
	Label string
	Value string
}

// Stats renders "label: value" pairs separated by two spaces.
func (t Theme) Stats(stats ...Stat) string {
	parts := make([]string, 0, len(stats))
	for _, s := range stats {
		parts = append(parts, t.Muted.Render(s.Label+":")+" "+s.Value)
	}
	return strings.Join(parts, "  ")
}

// Panel frames body under a title using the Box style.
func (t Theme) Panel(title, body string) string {
	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, t.Title.Render(title), body))
}

// SideBySide joins panels horizontally with a gap, top aligned.
func SideBySide(panels ...string) string {
	parts := make([]string, 0, 2*len(panels))
	for i, p := range panels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
