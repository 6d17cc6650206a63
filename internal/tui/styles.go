package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/repository"
)

// palette holds the colors for one color scheme.
type palette struct {
	fg     lipgloss.Color
	dimmed lipgloss.Color
	accent lipgloss.Color
	border lipgloss.Color
	red    lipgloss.Color
}

var (
	lightPalette = palette{
		fg:     lipgloss.Color("#1A1B1E"),
		dimmed: lipgloss.Color("#868E96"),
		accent: lipgloss.Color("#228BE6"),
		border: lipgloss.Color("#CED4DA"),
		red:    lipgloss.Color("#FA5252"),
	}
	darkPalette = palette{
		fg:     lipgloss.Color("#C1C2C5"),
		dimmed: lipgloss.Color("#909296"),
		accent: lipgloss.Color("#4DABF7"),
		border: lipgloss.Color("#373A40"),
		red:    lipgloss.Color("#FF6B6B"),
	}
)

// Styles are the component styles for one color scheme.
type Styles struct {
	Header       lipgloss.Style
	ViewLabel    lipgloss.Style
	Card         lipgloss.Style
	SelectedCard lipgloss.Style
	TaskTitle    lipgloss.Style
	Dimmed       lipgloss.Style
	Label        lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Field        lipgloss.Style
	FocusedField lipgloss.Style
}

// NewStyles builds the styles for scheme.
func NewStyles(scheme repository.ColorScheme) Styles {
	p := lightPalette
	if scheme == repository.Dark {
		p = darkPalette
	}

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Foreground(p.fg).
		Padding(0, 1).
		Width(60)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		ViewLabel: lipgloss.NewStyle().
			Foreground(p.accent),
		Card:         card,
		SelectedCard: card.BorderForeground(p.accent),
		TaskTitle: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Dimmed: lipgloss.NewStyle().
			Foreground(p.dimmed),
		Label: lipgloss.NewStyle().
			Foreground(p.fg).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(p.red),
		Help: lipgloss.NewStyle().
			Foreground(p.dimmed),
		Field: lipgloss.NewStyle().
			Foreground(p.dimmed),
		FocusedField: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
	}
}
