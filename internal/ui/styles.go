package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	FieldTitle lipgloss.Style
	Focused    lipgloss.Style
	Label      lipgloss.Style
	Unlimited  lipgloss.Style
	Error      lipgloss.Style
	Faint      lipgloss.Style
	Box        lipgloss.Style
}

func defaultStyles() Styles {
	base := lipgloss.NewStyle()
	return Styles{
		Title:      base.Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		Subtitle:   base.Faint(true),
		FieldTitle: base.Foreground(lipgloss.Color("#A3A3A3")).Width(16),
		Focused:    base.Bold(true).Foreground(lipgloss.Color("#22D3EE")).Width(16),
		Label:      base.Foreground(lipgloss.Color("#22C55E")),
		Unlimited:  base.Foreground(lipgloss.Color("#F59E0B")),
		Error:      base.Foreground(lipgloss.Color("#EF4444")),
		Faint:      base.Faint(true),
		Box:        base.Padding(0, 1),
	}
}
