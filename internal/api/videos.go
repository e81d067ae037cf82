package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type createVideoRequest struct {
	ScriptID *int64  `json:"script_id"`
	Title    string  `json:"title" binding:"required"`
	Filename *string `json:"filename"`
	Duration *int    `json:"duration" binding:"omitempty,min=0"`
	Status   string  `json:"status"`
}

type updateVideoRequest struct {
	ScriptID *int64  `json:"script_id"`
	Title    *string `json:"title" binding:"omitempty,min=1"`
	Filename *string `json:"filename"`
	Duration *int    `json:"duration" binding:"omitempty,min=0"`
	Status   *string `json:"status"`
}

func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.stores.Videos.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "", "Failed to fetch videos")
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) GetVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	video, err := h.stores.Videos.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Video not found", "Failed to fetch video")
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) CreateVideo(c *gin.Context) {
	var req createVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid video data", err)
		return
	}

	video, err := h.stores.Videos.Create(c.Request.Context(), domain.Video{
		ScriptID: req.ScriptID,
		Title:    req.Title,
		Filename: req.Filename,
		Duration: req.Duration,
		Status:   req.Status,
	})
	if err != nil {
		h.fail(c, err, "", "Failed to create video")
		return
	}
	c.JSON(http.StatusOK, video)
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid video data", err)
		return
	}

	video, err := h.stores.Videos.Update(c.Request.Context(), id, domain.VideoPatch{
		ScriptID: req.ScriptID,
		Title:    req.Title,
		Filename: req.Filename,
		Duration: req.Duration,
		Status:   req.Status,
	})
	if err != nil {
		h.fail(c, err, "Video not found", "Failed to update video")
		return
	}
	c.JSON(http.StatusOK, video)
}
