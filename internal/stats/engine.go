// Package stats computes frequency rankings over the borrow history:
// most popular genre tokens and most borrowed titles.
package stats

import (
	"sort"

	"bookhub/pkg/genre"
)

type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type TitleCount struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

type Engine struct {
	history *HistoryStore
}

func NewEngine(history *HistoryStore) *Engine {
	return &Engine{history: history}
}

// TopGenres tokenizes every record's genre list, counts token
// occurrences, and returns the limit highest counts. The sort is stable
// over the count key only: tied tokens keep the order in which they
// were first seen while scanning the records.
func (e *Engine) TopGenres(limit int) []GenreCount {
	counts := make(map[string]int)
	var order []string

	for _, rec := range e.history.All() {
		for _, raw := range rec.Genre {
			for _, tok := range genre.Split(raw) {
				if _, seen := counts[tok]; !seen {
					order = append(order, tok)
				}
				counts[tok]++
			}
		}
	}

	out := make([]GenreCount, 0, len(order))
	for _, tok := range order {
		out = append(out, GenreCount{Genre: tok, Count: counts[tok]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// TopBooks counts completed borrows per title, skipping records with no
// borrower, with the same stable ordering policy as TopGenres.
func (e *Engine) TopBooks(limit int) []TitleCount {
	counts := make(map[string]int)
	var order []string

	for _, rec := range e.history.All() {
		if rec.Borrower == "" {
			continue
		}
		if _, seen := counts[rec.Title]; !seen {
			order = append(order, rec.Title)
		}
		counts[rec.Title]++
	}

	out := make([]TitleCount, 0, len(order))
	for _, title := range order {
		out = append(out, TitleCount{Title: title, Count: counts[title]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
