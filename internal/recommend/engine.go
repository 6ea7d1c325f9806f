// Package recommend implements the two recommendation flavors:
// tokenized-genre matching (optionally widened by a user's view history)
// and the multi-criteria series/author/genre suggestion list.
package recommend

import (
	"errors"
	"slices"

	"github.com/rs/zerolog"

	"bookhub/internal/catalog"
	"bookhub/internal/prefs"
	"bookhub/pkg/genre"
	"bookhub/pkg/models"
)

// ErrNoGenres rejects a tokenized-genre request with no genres at all.
var ErrNoGenres = errors.New("at least one genre is required")

// maxSuggestions caps the multi-criteria result list.
const maxSuggestions = 10

type Engine struct {
	store *catalog.Store
	prefs *prefs.Tracker
	log   zerolog.Logger
}

func NewEngine(store *catalog.Store, tracker *prefs.Tracker, log zerolog.Logger) *Engine {
	return &Engine{
		store: store,
		prefs: tracker,
		log:   log.With().Str("component", "recommend").Logger(),
	}
}

// ByTokenizedGenre returns every book whose tokenized genre set
// intersects the requested genres, plus any book the user has already
// viewed. Results keep catalog order and are not capped; ids are unique
// in the catalog so no de-duplication is needed.
func (e *Engine) ByTokenizedGenre(genres []string, userID string) ([]models.Book, error) {
	if len(genres) == 0 {
		return nil, ErrNoGenres
	}

	requested := make(map[string]struct{}, len(genres))
	for _, g := range genres {
		requested[g] = struct{}{}
	}

	viewed := make(map[int]struct{})
	if userID != "" {
		for _, b := range e.prefs.HistoryOf(userID) {
			viewed[b.ID] = struct{}{}
		}
	}

	var out []models.Book
	for _, b := range e.store.All() {
		if _, ok := viewed[b.ID]; ok {
			out = append(out, b)
			continue
		}
		if intersects(genre.TokenSet(b.Genre), requested) {
			out = append(out, b)
		}
	}

	e.log.Debug().
		Int("requested", len(genres)).
		Int("matches", len(out)).
		Bool("with_history", len(viewed) > 0).
		Msg("tokenized genre recommendation")
	return out, nil
}

// MultiCriteriaQuery carries the /maybeUlike signals. ExcludeTitle is
// the book the user is currently looking at; it never recommends itself.
type MultiCriteriaQuery struct {
	Series       string
	Author       string
	Genres       []string
	ExcludeTitle string
}

// ByMultiCriteria builds three candidate lists (series match, author
// match, verbatim genre match), concatenates them in that priority
// order, drops the excluded title, de-duplicates by title keeping the
// first occurrence, and truncates to maxSuggestions.
//
// The genre clause tests verbatim membership of the requested string in
// the book's raw genre list. It is deliberately not tokenized, unlike
// ByTokenizedGenre: a book tagged ["Sci-Fi,Adventure"] matches a
// tokenized request for "Sci-Fi" but not a verbatim one. The two paths
// have always disagreed this way and callers depend on it.
func (e *Engine) ByMultiCriteria(q MultiCriteriaQuery) []models.Book {
	var candidates []models.Book
	if q.Series != "" {
		candidates = append(candidates, e.matchSeries(q.Series)...)
	}
	candidates = append(candidates, e.matchAuthor(q.Author)...)
	for _, g := range q.Genres {
		candidates = append(candidates, e.matchVerbatimGenre(g)...)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]models.Book, 0, maxSuggestions)
	for _, b := range candidates {
		if b.Title == q.ExcludeTitle {
			continue
		}
		if _, dup := seen[b.Title]; dup {
			continue
		}
		seen[b.Title] = struct{}{}
		out = append(out, b)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func (e *Engine) matchSeries(series string) []models.Book {
	var out []models.Book
	for _, b := range e.store.All() {
		if b.Series == series {
			out = append(out, b)
		}
	}
	return out
}

func (e *Engine) matchAuthor(author string) []models.Book {
	var out []models.Book
	for _, b := range e.store.All() {
		if b.Author == author {
			out = append(out, b)
		}
	}
	return out
}

func (e *Engine) matchVerbatimGenre(g string) []models.Book {
	var out []models.Book
	for _, b := range e.store.All() {
		if slices.Contains(b.Genre, g) {
			out = append(out, b)
		}
	}
	return out
}

func intersects(set map[string]struct{}, requested map[string]struct{}) bool {
	for t := range set {
		if _, ok := requested[t]; ok {
			return true
		}
	}
	return false
}
