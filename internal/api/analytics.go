package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

// Omitted measurements are recorded as zero.
type createAnalyticsRequest struct {
	VideoID        *int64   `json:"video_id"`
	Platform       string   `json:"platform" binding:"required"`
	Views          *int64   `json:"views" binding:"omitempty,min=0"`
	EngagementRate *float64 `json:"engagement_rate" binding:"omitempty,min=0"`
	Revenue        *float64 `json:"revenue"`
	ConversionRate *float64 `json:"conversion_rate" binding:"omitempty,min=0"`
}

func (r createAnalyticsRequest) toDomain() domain.Analytics {
	a := domain.Analytics{VideoID: r.VideoID, Platform: r.Platform}
	if r.Views != nil {
		a.Views = *r.Views
	}
	if r.EngagementRate != nil {
		a.EngagementRate = *r.EngagementRate
	}
	if r.Revenue != nil {
		a.Revenue = *r.Revenue
	}
	if r.ConversionRate != nil {
		a.ConversionRate = *r.ConversionRate
	}
	return a
}

func (h *Handler) ListAnalytics(c *gin.Context) {
	rows, err := h.stores.Analytics.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) ListVideoAnalytics(c *gin.Context) {
	videoID, ok := parseID(c, "videoId")
	if !ok {
		return
	}

	rows, err := h.stores.Analytics.ListByVideo(c.Request.Context(), videoID)
	if err != nil {
		h.fail(c, err, "", "Failed to fetch video analytics")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	row, err := h.stores.Analytics.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Analytics not found", "Failed to fetch analytics")
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) CreateAnalytics(c *gin.Context) {
	var req createAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid analytics data", err)
		return
	}

	row, err := h.stores.Analytics.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, err, "", "Failed to create analytics")
		return
	}
	c.JSON(http.StatusOK, row)
}
