package announce

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	payload := json.RawMessage(`{"message":"closed on Sunday","level":"info"}`)

	r := gin.New()
	NewHandler(payload).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/announcement", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(payload), w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
