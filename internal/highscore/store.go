package highscore

import (
	"sort"

	"quizo/internal/domain"
)

// maxEntries caps the persisted list after every insertion.
const maxEntries = 20

// Store is the high-score list: append-only via Record, ranked, bounded.
type Store interface {
	// Record appends an entry for name with the current timestamp,
	// re-ranks the list, and persists it best-effort.
	Record(name string, score int) error
	// List returns the ranked entries. Absent or corrupt storage yields
	// an empty list, never an error that aborts quiz flow.
	List() ([]domain.HighScoreEntry, error)
}

// rank sorts by score descending, ties broken by earlier timestamp, and
// truncates to the bounded size.
func rank(entries []domain.HighScoreEntry) []domain.HighScoreEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].At.Before(entries[j].At)
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return entries
}
