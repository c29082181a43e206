package highscore

import (
	"sync"
	"time"

	"quizo/internal/domain"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.RWMutex
	clock   func() time.Time
	entries []domain.HighScoreEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{clock: time.Now}
}

// NewMemoryStoreWithClock allows deterministic timestamps in tests.
func NewMemoryStoreWithClock(clock func() time.Time) *MemoryStore {
	return &MemoryStore{clock: clock}
}

func (s *MemoryStore) Record(name string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = rank(append(s.entries, domain.HighScoreEntry{
		Name:  name,
		Score: score,
		At:    s.clock(),
	}))
	return nil
}

func (s *MemoryStore) List() ([]domain.HighScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.HighScoreEntry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}
