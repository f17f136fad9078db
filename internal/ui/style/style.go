// Package style holds the colors, icons and lipgloss styles shared by the
// log handler and the report renderers.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Text styles for report output.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Label  = lipgloss.NewStyle().Foreground(Slate)
	Value  = lipgloss.NewStyle().Bold(true)
	Hit    = lipgloss.NewStyle().Foreground(Green)
	Miss   = lipgloss.NewStyle().Foreground(Yellow)
	Fail   = lipgloss.NewStyle().Foreground(Red)
)
