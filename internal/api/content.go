package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type scoreContentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to fetch dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ScoreContent never fails on the generator's account; scoring falls back
// to a default instead.
func (h *Handler) ScoreContent(c *gin.Context) {
	var req scoreContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Content is required", err)
		return
	}

	score, err := h.content.ScoreContent(c.Request.Context(), req.Content)
	if errors.Is(err, domain.ErrValidation) {
		h.badRequest(c, "Content is required", nil)
		return
	}
	if err != nil {
		h.fail(c, err, "", "Failed to score content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": score})
}
