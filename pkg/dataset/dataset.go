// Package dataset loads the three JSON collections the server works from:
// books, borrow records and the announcement payload. They are read once
// at startup and never re-read or written back.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"bookhub/pkg/models"
)

type Config struct {
	BooksPath        string
	RecordsPath      string
	AnnouncementPath string
}

type Dataset struct {
	Books        []models.Book
	Records      []models.BorrowRecord
	Announcement json.RawMessage
}

func Load(cfg Config) (*Dataset, error) {
	var ds Dataset

	if err := readJSON(cfg.BooksPath, &ds.Books); err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	if err := readJSON(cfg.RecordsPath, &ds.Records); err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}

	raw, err := os.ReadFile(cfg.AnnouncementPath)
	if err != nil {
		return nil, fmt.Errorf("load announcement: %w", err)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("load announcement: %s is not valid JSON", cfg.AnnouncementPath)
	}
	ds.Announcement = json.RawMessage(raw)

	return &ds, nil
}

func MustLoad(cfg Config, log zerolog.Logger) *Dataset {
	ds, err := Load(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}
	log.Info().
		Int("books", len(ds.Books)).
		Int("records", len(ds.Records)).
		Msg("dataset loaded")
	return ds
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
