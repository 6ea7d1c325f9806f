package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookDecodeMalformedGenre(t *testing.T) {
	// A bare string where an array is expected must not fail the decode;
	// the genre list just comes out empty.
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"title":"Bad","genre":"Fantasy"}`), &b))
	assert.Equal(t, 7, b.ID)
	assert.Nil(t, b.Genre)

	require.NoError(t, json.Unmarshal([]byte(`{"id":8,"title":"Worse","genre":42}`), &b))
	assert.Nil(t, b.Genre)
}

func TestBookDecodeGenreList(t *testing.T) {
	var b Book
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"X","genre":["科幻,冒险","武侠"]}`), &b))
	assert.Equal(t, GenreList{"科幻,冒险", "武侠"}, b.Genre)
}

func TestBorrowRecordDecode(t *testing.T) {
	var r BorrowRecord
	require.NoError(t, json.Unmarshal([]byte(`{"title":"X","genre":["A,B"],"borrower":"u1"}`), &r))
	assert.Equal(t, "X", r.Title)
	assert.Equal(t, GenreList{"A,B"}, r.Genre)
	assert.Equal(t, "u1", r.Borrower)
}
