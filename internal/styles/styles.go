// Package styles holds the shared lipgloss styles for dashboard output.
package styles

import "github.com/charmbracelet/lipgloss"

// Color constants
const (
	ColorAccent     = "205" // Magenta - titles, headers, emphasis
	ColorSuccess    = "171" // Purple - success toasts
	ColorError      = "196" // Red - error banners
	ColorFaint      = "238" // Gray - borders, separators, help text
	ColorHighlight  = "62"  // Dark Cyan - selected backgrounds
	ColorSelected   = "230" // Light Yellow - selected foreground
	ColorCellNormal = "252" // Light Gray - normal cell text
	ColorBar        = "39"  // Blue - chart bars, matches the dashboard's blues scheme
)

var accent = lipgloss.Color(ColorAccent)

// SetAccent overrides the accent color from config.
func SetAccent(color string) {
	if color == "" {
		return
	}
	accent = lipgloss.Color(color)
	Title = Title.Foreground(accent)
	TableHeader = TableHeader.Foreground(accent)
	MetricValue = MetricValue.Foreground(accent)
	TabActive = TabActive.Foreground(accent)
}

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorError)).
		Bold(true)

	Faint = lipgloss.NewStyle().
		Faint(true)

	Separator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))
)

// Table component styles
var (
	TableHeader = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	TableCell = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCellNormal))

	TableBorder = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorFaint))

	TableSelected = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorHighlight)).
			Foreground(lipgloss.Color(ColorSelected)).
			Bold(true)
)

// Dashboard widget styles
var (
	// MetricCard frames one headline number, like the metric tiles on the
	// old web dashboard.
	MetricCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorFaint)).
			Padding(0, 2)

	MetricLabel = lipgloss.NewStyle().
			Faint(true)

	MetricValue = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	ChartBar = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBar))

	ChartLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorCellNormal))

	TabActive = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Underline(true)

	TabInactive = lipgloss.NewStyle().
			Faint(true)

	FormBox = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorFaint)).
		Padding(0, 1)
)
