// Package prefs tracks which books each user has viewed, in memory,
// for the lifetime of the process. Nothing is persisted.
package prefs

import (
	"sync"

	"bookhub/pkg/models"
)

// Tracker maps a user id to the ordered list of books they viewed.
// Entries are created lazily and never expire. Repeat views are kept;
// the recommendation engine only tests membership so duplicates are
// harmless.
//
// RecordView currently has no HTTP caller: the view-tracking endpoint
// never shipped, but the recommendation-by-history behavior it feeds is
// live and tested, so the write path stays.
type Tracker struct {
	mu      sync.RWMutex
	history map[string][]models.Book
}

func NewTracker() *Tracker {
	return &Tracker{history: make(map[string][]models.Book)}
}

func (t *Tracker) RecordView(userID string, book models.Book) {
	if userID == "" {
		return
	}
	t.mu.Lock()
	t.history[userID] = append(t.history[userID], book)
	t.mu.Unlock()
}

// HistoryOf returns a copy of the user's view history, oldest first.
// Unknown users get an empty slice.
func (t *Tracker) HistoryOf(userID string) []models.Book {
	t.mu.RLock()
	defer t.mu.RUnlock()

	h := t.history[userID]
	out := make([]models.Book, len(h))
	copy(out, h)
	return out
}
