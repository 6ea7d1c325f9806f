package models

// BorrowRecord is one historical borrow event from the records dataset.
// Borrower is empty for reservations that never completed; aggregation
// over borrowed titles only counts records with a non-empty Borrower.
type BorrowRecord struct {
	Title    string    `json:"title"`
	Genre    GenreList `json:"genre"`
	Borrower string    `json:"borrower,omitempty"`
}
