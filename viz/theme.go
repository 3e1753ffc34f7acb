package viz

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles a Renderer applies. A zero style
// renders its text verbatim, so themes can opt out per slot.
type Theme struct {
	// Title styles section headers.
	Title lipgloss.Style
	// Label styles field names and column headers.
	Label lipgloss.Style
	// Value styles vertex IDs, distances, and counts.
	Value lipgloss.Style
	// Arrow styles the connector glyphs between path hops.
	Arrow lipgloss.Style
	// Muted styles secondary detail such as per-edge weights.
	Muted lipgloss.Style
	// Warn styles unreachable markers and negative-cycle notices.
	Warn lipgloss.Style
}

// Plain returns a theme with no styling at all. Renderings under Plain
// contain no ANSI escape sequences.
func Plain() Theme { return Theme{} }

// Ocean is the colored default theme.
func Ocean() Theme {
	var (
		teal  = lipgloss.Color("#2CD7C7")
		deep  = lipgloss.Color("#16858E")
		slate = lipgloss.Color("#2C4A54")
		amber = lipgloss.Color("#F4D03F")
	)
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(teal),
		Label: lipgloss.NewStyle().Foreground(deep),
		Value: lipgloss.NewStyle().Bold(true),
		Arrow: lipgloss.NewStyle().Foreground(deep),
		Muted: lipgloss.NewStyle().Foreground(slate),
		Warn:  lipgloss.NewStyle().Foreground(amber),
	}
}
