package profile_test

import (
	"strings"
	"testing"

	"quizo/internal/domain"
	"quizo/internal/infra/localdir"
	"quizo/internal/profile"
)

func newManager(t *testing.T) *profile.Manager {
	t.Helper()
	return profile.NewManager(localdir.New(t.TempDir()), nil)
}

func TestNameDefaults(t *testing.T) {
	m := newManager(t)

	if m.HasName() {
		t.Fatalf("expected no saved name")
	}
	if saved := m.SetName("   "); saved != profile.DefaultName {
		t.Fatalf("expected default name, got %q", saved)
	}
	if !m.HasName() {
		t.Fatalf("expected name saved")
	}
}

func TestNameTruncated(t *testing.T) {
	m := newManager(t)

	long := strings.Repeat("x", 40)
	saved := m.SetName(long)
	if len(saved) != 20 {
		t.Fatalf("expected 20-rune name, got %d", len(saved))
	}
	if m.Name() != saved {
		t.Fatalf("saved name not persisted: %q vs %q", m.Name(), saved)
	}
}

func TestThemeCycle(t *testing.T) {
	m := newManager(t)

	if m.Theme() != domain.ThemeAuto {
		t.Fatalf("expected auto default, got %q", m.Theme())
	}
	if next := m.CycleTheme(); next != domain.ThemeDark {
		t.Fatalf("expected dark, got %q", next)
	}
	if next := m.CycleTheme(); next != domain.ThemeLight {
		t.Fatalf("expected light, got %q", next)
	}
	if next := m.CycleTheme(); next != domain.ThemeAuto {
		t.Fatalf("expected auto, got %q", next)
	}
	if m.Theme() != domain.ThemeAuto {
		t.Fatalf("theme not persisted, got %q", m.Theme())
	}
}
