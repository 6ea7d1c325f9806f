package scrape

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookhub/pkg/logging"
)

type Handler struct {
	Scraper *Scraper
	log     zerolog.Logger
}

func NewHandler(scraper *Scraper, log zerolog.Logger) *Handler {
	return &Handler{
		Scraper: scraper,
		log:     log.With().Str("component", "scrape").Logger(),
	}
}

func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/scrape", h.scrape)
}

type scrapeRequest struct {
	ISBN string `json:"isbn" binding:"required"`
}

func (h *Handler) scrape(c *gin.Context) {
	var req scrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isbn is required"})
		return
	}

	res, err := h.Scraper.Fetch(c.Request.Context(), req.ISBN)
	if err != nil {
		// Cause detail stays in the log; the caller gets a generic
		// server error either way.
		h.log.Error().
			Err(err).
			Str("isbn", req.ISBN).
			Str("request_id", logging.RequestID(c)).
			Msg("scrape failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occurred while scraping the data."})
		return
	}

	c.JSON(http.StatusOK, res)
}
