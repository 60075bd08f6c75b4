package termview

import "github.com/charmbracelet/lipgloss"

// Legend colors of the shortest-path view.
var (
	PathColor     = lipgloss.Color("#10b981") // green
	CurrentColor  = lipgloss.Color("#f59e0b") // orange
	VisitedColor  = lipgloss.Color("#3b82f6") // blue
	StartColor    = lipgloss.Color("#10b981") // green
	EndColor      = lipgloss.Color("#ef4444") // red
	MutedColor    = lipgloss.Color("#6b7280")
	PositiveColor = lipgloss.Color("#3b82f6")
	NegativeColor = lipgloss.Color("#ef4444")
)

// Theme holds one style per semantic role. Renderers never build styles of
// their own, so PlainTheme yields uncolored text.
type Theme struct {
	Title     lipgloss.Style
	Muted     lipgloss.Style
	Path      lipgloss.Style
	Current   lipgloss.Style
	Visited   lipgloss.Style
	Start     lipgloss.Style
	End       lipgloss.Style
	Bar       lipgloss.Style
	Highlight lipgloss.Style
	Positive  lipgloss.Style
	Negative  lipgloss.Style
	Class0    lipgloss.Style
	Class1    lipgloss.Style
	Box       lipgloss.Style
}

// DefaultTheme returns the colored theme.
func DefaultTheme() Theme {
	return Theme{
		Title:     lipgloss.NewStyle().Bold(true),
		Muted:     lipgloss.NewStyle().Foreground(MutedColor),
		Path:      lipgloss.NewStyle().Foreground(PathColor).Bold(true),
		Current:   lipgloss.NewStyle().Foreground(CurrentColor).Bold(true),
		Visited:   lipgloss.NewStyle().Foreground(VisitedColor),
		Start:     lipgloss.NewStyle().Foreground(StartColor).Underline(true),
		End:       lipgloss.NewStyle().Foreground(EndColor).Underline(true),
		Bar:       lipgloss.NewStyle().Foreground(VisitedColor),
		Highlight: lipgloss.NewStyle().Foreground(CurrentColor),
		Positive:  lipgloss.NewStyle().Foreground(PositiveColor),
		Negative:  lipgloss.NewStyle().Foreground(NegativeColor),
		Class0:    lipgloss.NewStyle().Foreground(NegativeColor),
		Class1:    lipgloss.NewStyle().Foreground(PositiveColor),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Padding(0, 1),
	}
}

// PlainTheme returns a theme without any styling, for logs, pipes and tests.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{
		Title: s, Muted: s, Path: s, Current: s, Visited: s, Start: s, End: s,
		Bar: s, Highlight: s, Positive: s, Negative: s, Class0: s, Class1: s, Box: s,
	}
}
