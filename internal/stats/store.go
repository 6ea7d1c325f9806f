package stats

import "bookhub/pkg/models"

// HistoryStore is the immutable collection of borrow records, loaded
// once at startup. Reads are lock-free.
type HistoryStore struct {
	records []models.BorrowRecord
}

func NewHistoryStore(records []models.BorrowRecord) *HistoryStore {
	return &HistoryStore{records: records}
}

// All returns every record in dataset load order.
func (s *HistoryStore) All() []models.BorrowRecord {
	return s.records
}
