package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookhub/pkg/models"
)

type Handler struct {
	Engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/recommend", h.recommend)
	r.POST("/maybeUlike", h.maybeULike)
}

type recommendRequest struct {
	Genres []string `json:"genres" binding:"required"`
	UserID string   `json:"userId"`
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Genres are required"})
		return
	}

	books, err := h.Engine.ByTokenizedGenre(req.Genres, req.UserID)
	if err != nil {
		if errors.Is(err, ErrNoGenres) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Genres are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		return
	}

	if books == nil {
		books = []models.Book{}
	}
	c.JSON(http.StatusOK, books)
}

type maybeULikeRequest struct {
	Series string   `json:"series"`
	Author string   `json:"author" binding:"required"`
	Genre  []string `json:"genre" binding:"required"`
	Title  string   `json:"title"`
}

func (h *Handler) maybeULike(c *gin.Context) {
	var req maybeULikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "author and genre are required"})
		return
	}

	books := h.Engine.ByMultiCriteria(MultiCriteriaQuery{
		Series:       req.Series,
		Author:       req.Author,
		Genres:       req.Genre,
		ExcludeTitle: req.Title,
	})
	c.JSON(http.StatusOK, books)
}
