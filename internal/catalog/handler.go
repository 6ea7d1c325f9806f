package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/genres", h.genres)               // GET /genres
	r.GET("/getBookDetails/:id", h.bookByID) // GET /getBookDetails/42
}

func (h *Handler) genres(c *gin.Context) {
	genres := h.Store.Genres()
	if genres == nil {
		genres = []string{}
	}
	c.JSON(http.StatusOK, genres)
}

func (h *Handler) bookByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}

	book, ok := h.Store.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		return
	}
	c.JSON(http.StatusOK, book)
}
