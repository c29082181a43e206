package localdir

import (
	"path/filepath"
	"testing"
)

func TestSetGetRoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested", "state"))

	if err := store.Set("name", "Alice"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok := store.Get("name")
	if !ok || value != "Alice" {
		t.Fatalf("expected Alice, got %q (present=%v)", value, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := New(t.TempDir())

	if value, ok := store.Get("absent"); ok {
		t.Fatalf("expected absence, got %q", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set("theme", "light"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, _ := store.Get("theme")
	if value != "light" {
		t.Fatalf("expected light, got %q", value)
	}
}
