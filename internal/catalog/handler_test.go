package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookhub/pkg/models"
)

func newTestRouter(books []models.Book) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(NewStore(books, zerolog.Nop())).RegisterRoutes(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestBookDetailsEndpoint(t *testing.T) {
	r := newTestRouter([]models.Book{
		{ID: 1, Title: "X", Author: "Au", Genre: models.GenreList{"Sci-Fi"}},
	})

	w := get(r, "/getBookDetails/1")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Book
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "X", got.Title)
}

func TestBookDetailsEndpointNotFound(t *testing.T) {
	r := newTestRouter(nil)

	w := get(r, "/getBookDetails/42")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/getBookDetails/not-a-number")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGenresEndpoint(t *testing.T) {
	r := newTestRouter([]models.Book{
		{ID: 1, Genre: models.GenreList{"科幻,冒险"}},
		{ID: 2, Genre: models.GenreList{"冒险"}},
	})

	w := get(r, "/genres")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["科幻","冒险"]`, w.Body.String())
}

func TestGenresEndpointEmptyCatalog(t *testing.T) {
	r := newTestRouter(nil)

	w := get(r, "/genres")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
