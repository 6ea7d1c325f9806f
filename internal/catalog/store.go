package catalog

import (
	"github.com/rs/zerolog"

	"bookhub/pkg/genre"
	"bookhub/pkg/models"
)

// Store is the immutable in-memory book catalog. It is built once at
// startup and only read afterwards, so concurrent use needs no locking.
type Store struct {
	books []models.Book
	byID  map[int]models.Book
	log   zerolog.Logger
}

func NewStore(books []models.Book, log zerolog.Logger) *Store {
	s := &Store{
		books: books,
		byID:  make(map[int]models.Book, len(books)),
		log:   log.With().Str("component", "catalog").Logger(),
	}
	for _, b := range books {
		if _, dup := s.byID[b.ID]; dup {
			s.log.Warn().Int("id", b.ID).Str("title", b.Title).Msg("duplicate book id in dataset, keeping first")
			continue
		}
		s.byID[b.ID] = b
	}
	return s
}

// ByID returns the book with the given id, or false if the catalog has
// no such entry.
func (s *Store) ByID(id int) (models.Book, bool) {
	b, ok := s.byID[id]
	return b, ok
}

// All returns every book in dataset load order. Callers must not mutate
// the returned slice.
func (s *Store) All() []models.Book {
	return s.books
}

// Genres returns every distinct genre token across the catalog in
// first-seen order. Books with a missing or malformed genre field are
// skipped and logged, never fatal.
func (s *Store) Genres() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, b := range s.books {
		if b.Genre == nil {
			s.log.Warn().Int("id", b.ID).Str("title", b.Title).Msg("book has no usable genre list")
			continue
		}
		for _, t := range genre.Tokenize(b.Genre) {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
	}
	return out
}
