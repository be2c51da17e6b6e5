package tui

import "github.com/charmbracelet/lipgloss"

// Styles colours the simulated LCD and the status line.
type Styles struct {
	Bezel  lipgloss.Style
	Screen lipgloss.Style
	Status lipgloss.Style
	Mode   lipgloss.Style
	Error  lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Bezel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5a7a1c")).
			Padding(0, 1),
		Screen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1e2b0f")).
			Background(lipgloss.Color("#7ca32b")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Mode: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7ca32b")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff5f87")),
	}
}
