package prefs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookhub/pkg/models"
)

func TestHistoryOfUnseenUser(t *testing.T) {
	tr := NewTracker()
	assert.Empty(t, tr.HistoryOf("nobody"))
}

func TestRecordViewKeepsOrderAndRepeats(t *testing.T) {
	tr := NewTracker()
	a := models.Book{ID: 1, Title: "A"}
	b := models.Book{ID: 2, Title: "B"}

	tr.RecordView("u1", a)
	tr.RecordView("u1", b)
	tr.RecordView("u1", a)

	h := tr.HistoryOf("u1")
	require.Len(t, h, 3)
	assert.Equal(t, []models.Book{a, b, a}, h)

	assert.Empty(t, tr.HistoryOf("u2"))
}

func TestRecordViewIgnoresEmptyUser(t *testing.T) {
	tr := NewTracker()
	tr.RecordView("", models.Book{ID: 1})
	assert.Empty(t, tr.HistoryOf(""))
}

func TestHistoryOfReturnsCopy(t *testing.T) {
	tr := NewTracker()
	tr.RecordView("u1", models.Book{ID: 1, Title: "A"})

	h := tr.HistoryOf("u1")
	h[0].Title = "mutated"

	assert.Equal(t, "A", tr.HistoryOf("u1")[0].Title)
}

func TestConcurrentRecordView(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			tr.RecordView("u1", models.Book{ID: n})
		}(i)
	}
	wg.Wait()

	assert.Len(t, tr.HistoryOf("u1"), 50)
}
