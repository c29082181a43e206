package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quizo/internal/domain"
	"quizo/internal/session"
)

// sessionEventMsg wraps a core session event for the Bubble Tea loop.
type sessionEventMsg struct {
	event session.Event
}

// categoriesMsg delivers the category listing, nil when the fetch failed.
type categoriesMsg struct {
	categories []domain.Category
}

// waitForEvent relays the next session event into the program.
func waitForEvent(events <-chan session.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return sessionEventMsg{event: event}
	}
}

// loadCategories fetches the category listing once at startup. A failure
// is non-fatal: the setup screen simply offers no category filter.
func loadCategories(provider CategoryProvider) tea.Cmd {
	return func() tea.Msg {
		if provider == nil {
			return categoriesMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		categories, err := provider.Categories(ctx)
		if err != nil {
			return categoriesMsg{}
		}
		return categoriesMsg{categories: categories}
	}
}
