// import-catalog exports a sqlite library database into the three JSON
// dataset files the api-server loads at startup: books, borrow records
// and the announcement payload.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bookhub/pkg/database"
	"bookhub/pkg/logging"
	"bookhub/pkg/models"
)

func main() {
	var (
		dbPath = flag.String("db", database.DefaultConfig().Path, "path to the sqlite library database")
		outDir = flag.String("out", "data", "output directory for the JSON dataset")
	)
	flag.Parse()

	log := logging.New("info")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.MustOpen(database.Config{Path: *dbPath}, log)
	defer db.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", *outDir).Msg("create output dir failed")
	}

	books, err := exportBooks(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("export books failed")
	}
	records, err := exportRecords(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("export borrow records failed")
	}
	announcement, err := exportAnnouncement(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("export announcement failed")
	}

	if err := writeJSON(filepath.Join(*outDir, "books.json"), books); err != nil {
		log.Fatal().Err(err).Msg("write books.json failed")
	}
	if err := writeJSON(filepath.Join(*outDir, "record.json"), records); err != nil {
		log.Fatal().Err(err).Msg("write record.json failed")
	}
	if err := os.WriteFile(filepath.Join(*outDir, "announcement.json"), announcement, 0o644); err != nil {
		log.Fatal().Err(err).Msg("write announcement.json failed")
	}

	log.Info().
		Int("books", len(books)).
		Int("records", len(records)).
		Str("dir", *outDir).
		Msg("dataset exported")
}

func exportBooks(ctx context.Context, db *sql.DB) ([]models.Book, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, author, series, genres, cover_url, description, publisher, isbn, year
		FROM books
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var out []models.Book
	for rows.Next() {
		var (
			b           models.Book
			author      sql.NullString
			series      sql.NullString
			genresJSON  sql.NullString
			coverURL    sql.NullString
			description sql.NullString
			publisher   sql.NullString
			isbn        sql.NullString
			year        sql.NullInt64
		)
		if err := rows.Scan(
			&b.ID, &b.Title, &author, &series, &genresJSON,
			&coverURL, &description, &publisher, &isbn, &year,
		); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}

		b.Author = author.String
		b.Series = series.String
		b.CoverURL = coverURL.String
		b.Description = description.String
		b.Publisher = publisher.String
		b.ISBN = isbn.String
		b.Year = int(year.Int64)
		if genresJSON.Valid {
			_ = json.Unmarshal([]byte(genresJSON.String), &b.Genre)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func exportRecords(ctx context.Context, db *sql.DB) ([]models.BorrowRecord, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT title, genres, borrower
		FROM borrow_records
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query borrow_records: %w", err)
	}
	defer rows.Close()

	var out []models.BorrowRecord
	for rows.Next() {
		var (
			r          models.BorrowRecord
			genresJSON sql.NullString
			borrower   sql.NullString
		)
		if err := rows.Scan(&r.Title, &genresJSON, &borrower); err != nil {
			return nil, fmt.Errorf("scan borrow record: %w", err)
		}
		r.Borrower = borrower.String
		if genresJSON.Valid {
			_ = json.Unmarshal([]byte(genresJSON.String), &r.Genre)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// exportAnnouncement reads the single-row announcement table; a missing
// row falls back to an empty JSON object.
func exportAnnouncement(ctx context.Context, db *sql.DB) ([]byte, error) {
	var payload string
	err := db.QueryRowContext(ctx, `SELECT payload FROM announcement LIMIT 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return []byte("{}"), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query announcement: %w", err)
	}
	if !json.Valid([]byte(payload)) {
		return nil, fmt.Errorf("announcement payload is not valid JSON")
	}
	return []byte(payload), nil
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
