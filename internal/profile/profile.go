package profile

import (
	"strings"

	"go.uber.org/zap"

	"quizo/internal/domain"
)

const (
	nameKey  = "name"
	themeKey = "theme"

	// DefaultName is used whenever no name has been saved.
	DefaultName = "Player"
	maxNameLen  = 20
)

// Backing is the string-keyed local store the profile lives in.
type Backing interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Manager holds the persisted player identity and theme preference.
// Reads degrade to defaults; writes are best-effort and logged.
type Manager struct {
	store  Backing
	logger *zap.Logger
}

func NewManager(store Backing, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{store: store, logger: logger}
}

// Name returns the saved player name, or "" if none is saved.
func (m *Manager) Name() string {
	raw, ok := m.store.Get(nameKey)
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}

// HasName reports whether a name has been saved, gating the one-time
// welcome prompt.
func (m *Manager) HasName() bool {
	return m.Name() != ""
}

// SetName trims and length-bounds the name before saving. An empty name
// saves as DefaultName.
func (m *Manager) SetName(name string) string {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	if name == "" {
		name = DefaultName
	}
	if err := m.store.Set(nameKey, name); err != nil {
		m.logger.Warn("saving player name failed", zap.Error(err))
	}
	return name
}

// Theme returns the saved theme preference, defaulting to auto.
func (m *Manager) Theme() domain.Theme {
	raw, _ := m.store.Get(themeKey)
	return domain.ParseTheme(raw)
}

// SetTheme persists the theme preference best-effort.
func (m *Manager) SetTheme(theme domain.Theme) {
	if err := m.store.Set(themeKey, string(theme)); err != nil {
		m.logger.Warn("saving theme failed", zap.Error(err))
	}
}

// CycleTheme advances auto -> dark -> light -> auto and persists the result.
func (m *Manager) CycleTheme() domain.Theme {
	next := m.Theme().Next()
	m.SetTheme(next)
	return next
}
