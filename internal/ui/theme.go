package ui

import (
	"github.com/charmbracelet/lipgloss"

	"quizo/internal/domain"
)

// Palette bundles the lipgloss styles for one theme preference.
type Palette struct {
	Label     string
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Correct   lipgloss.Style
	Wrong     lipgloss.Style
	Frame     lipgloss.Style
}

// paletteFor maps the persisted preference onto a palette. Auto defers
// to the terminal background via adaptive colors.
func paletteFor(pref domain.Theme) Palette {
	switch pref {
	case domain.ThemeDark:
		return palette("Dark", lipgloss.Color("213"), lipgloss.Color("245"), lipgloss.Color("81"))
	case domain.ThemeLight:
		return palette("Light", lipgloss.Color("91"), lipgloss.Color("240"), lipgloss.Color("25"))
	default:
		return palette("Auto",
			lipgloss.AdaptiveColor{Light: "91", Dark: "213"},
			lipgloss.AdaptiveColor{Light: "240", Dark: "245"},
			lipgloss.AdaptiveColor{Light: "25", Dark: "81"})
	}
}

func palette(label string, title, subtle, highlight lipgloss.TerminalColor) Palette {
	return Palette{
		Label:     label,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(title),
		Subtle:    lipgloss.NewStyle().Foreground(subtle),
		Highlight: lipgloss.NewStyle().Foreground(highlight),
		Correct:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Wrong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Frame:     lipgloss.NewStyle().Padding(1, 2),
	}
}
