package ui

import (
	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/ui/palette"
)

// Styles are built per render from the active palette so that a theme
// toggle takes effect immediately.

func styleHeader() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)
}

func styleTitle() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().
		Foreground(p.Text).
		Bold(true)
}

func stylePane() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border)
}

func styleToggleOn() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().
		Foreground(p.Background).
		Background(p.Accent).
		Bold(true).
		Padding(0, 1)
}

func styleToggleOff() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().
		Foreground(p.TextMuted).
		Padding(0, 1)
}

func styleHelp() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().Foreground(p.TextMuted)
}

func styleStatus() lipgloss.Style {
	p := palette.Current()
	return lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
}
