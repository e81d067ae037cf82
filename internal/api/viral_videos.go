package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type createViralVideoRequest struct {
	Title           string   `json:"title" binding:"required"`
	Platform        string   `json:"platform" binding:"required"`
	URL             string   `json:"url" binding:"required"`
	Views           *int64   `json:"views" binding:"required,min=0"`
	EngagementRate  *float64 `json:"engagement_rate" binding:"required,min=0"`
	AIScore         *int     `json:"ai_score" binding:"omitempty,min=0,max=100"`
	Captions        *string  `json:"captions"`
	Hashtags        *string  `json:"hashtags"`
	AudioTranscript *string  `json:"audio_transcript"`
	Status          string   `json:"status"`
}

func (r createViralVideoRequest) toDomain() domain.ViralVideo {
	v := domain.ViralVideo{
		Title:           r.Title,
		Platform:        r.Platform,
		URL:             r.URL,
		Views:           *r.Views,
		EngagementRate:  *r.EngagementRate,
		Captions:        r.Captions,
		Hashtags:        r.Hashtags,
		AudioTranscript: r.AudioTranscript,
		Status:          r.Status,
	}
	if r.AIScore != nil {
		v.AIScore = *r.AIScore
	}
	return v
}

func (h *Handler) ListViralVideos(c *gin.Context) {
	videos, err := h.stores.ViralVideos.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to fetch viral videos")
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetViralVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	video, err := h.stores.ViralVideos.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Video not found", "Failed to fetch viral video")
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) CreateViralVideo(c *gin.Context) {
	var req createViralVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid video data", err)
		return
	}

	video, err := h.stores.ViralVideos.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, err, "", "Failed to create viral video")
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) AnalyzeViralVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.content.AnalyzeViralVideo(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Video not found", "Failed to analyze video")
		return
	}
	c.JSON(http.StatusOK, result)
}
