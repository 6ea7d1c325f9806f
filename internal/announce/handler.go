// Package announce serves the announcement payload loaded at startup.
// The payload is opaque to the server and passed through verbatim.
package announce

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	payload json.RawMessage
}

func NewHandler(payload json.RawMessage) *Handler {
	return &Handler{payload: payload}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/announcement", h.announcement)
}

func (h *Handler) announcement(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.payload)
}
