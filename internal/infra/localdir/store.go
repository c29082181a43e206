package localdir

import (
	"os"
	"path/filepath"
)

// Store persists independent string-keyed records as one file per key
// under a local state directory. A missing or unreadable key reports
// absence rather than an error.
type Store struct {
	dir string
}

// New builds a store rooted at dir. The directory is created lazily on
// the first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir resolves the state directory: $XDG_STATE_HOME/quizo, falling
// back to ~/.local/state/quizo.
func DefaultDir() string {
	if base := os.Getenv("XDG_STATE_HOME"); base != "" {
		return filepath.Join(base, "quizo")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "quizo-state"
	}
	return filepath.Join(home, ".local", "state", "quizo")
}

// Get returns the stored value for key and whether it was present.
func (s *Store) Get(key string) (string, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set writes the value for key, creating the state directory if needed.
func (s *Store) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key)
}
