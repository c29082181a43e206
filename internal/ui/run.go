package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"quizo/internal/domain"
)

// Run starts the shell and blocks until the player exits.
func Run(deps Deps, defaults domain.Settings) error {
	model := NewModel(deps).WithDefaults(defaults)
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
