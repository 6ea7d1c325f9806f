package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	topGenreLimit = 3
	topBookLimit  = 5
)

type Handler struct {
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/top-three-genres", h.topGenres)
	r.GET("/top-books", h.topBooks)
}

func (h *Handler) topGenres(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.TopGenres(topGenreLimit))
}

func (h *Handler) topBooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Engine.TopBooks(topBookLimit))
}
