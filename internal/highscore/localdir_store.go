package highscore

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"quizo/internal/domain"
	"quizo/internal/infra/localdir"
)

// storageKey matches the versioned record the browser build used.
const storageKey = "highscores.v1"

// LocalStore persists the high-score list as a JSON array in the local
// state directory.
type LocalStore struct {
	store  *localdir.Store
	clock  func() time.Time
	logger *zap.Logger
}

func NewLocalStore(store *localdir.Store, logger *zap.Logger) *LocalStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalStore{store: store, clock: time.Now, logger: logger}
}

// NewLocalStoreWithClock is test-only for deterministic timestamps.
func NewLocalStoreWithClock(store *localdir.Store, logger *zap.Logger, clock func() time.Time) *LocalStore {
	s := NewLocalStore(store, logger)
	s.clock = clock
	return s
}

func (s *LocalStore) Record(name string, score int) error {
	entries, _ := s.List()
	entries = append(entries, domain.HighScoreEntry{
		Name:  name,
		Score: score,
		At:    s.clock(),
	})
	entries = rank(entries)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	if err := s.store.Set(storageKey, string(data)); err != nil {
		s.logger.Warn("high score write failed", zap.Error(err))
		return err
	}
	return nil
}

func (s *LocalStore) List() ([]domain.HighScoreEntry, error) {
	raw, ok := s.store.Get(storageKey)
	if !ok {
		return []domain.HighScoreEntry{}, nil
	}
	var entries []domain.HighScoreEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// corrupt storage degrades to an empty list
		s.logger.Warn("high score list unreadable", zap.Error(err))
		return []domain.HighScoreEntry{}, nil
	}
	return entries, nil
}
