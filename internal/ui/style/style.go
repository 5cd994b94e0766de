// Package style holds the colors and icons shared by every terminal surface.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Ember  = lipgloss.Color("#E8590C")
	Steel  = lipgloss.Color("#5C6B7A")
	Ash    = lipgloss.Color("#98A2B3")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Skip    = "~"
	Arrow   = "→"
	Dot     = "●"
)

// Heading renders a bold section title in the accent color.
func Heading(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Ember).Render(s)
}

// Muted renders secondary text.
func Muted(s string) string {
	return lipgloss.NewStyle().Foreground(Ash).Render(s)
}
