package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type createScheduledPostRequest struct {
	VideoID       *int64     `json:"video_id"`
	Platform      string     `json:"platform" binding:"required"`
	ScheduledTime *time.Time `json:"scheduled_time" binding:"required"`
	Caption       *string    `json:"caption"`
	Hashtags      *string    `json:"hashtags"`
	Status        string     `json:"status"`
}

type updateScheduledPostRequest struct {
	VideoID       *int64     `json:"video_id"`
	Platform      *string    `json:"platform" binding:"omitempty,min=1"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Caption       *string    `json:"caption"`
	Hashtags      *string    `json:"hashtags"`
	Status        *string    `json:"status" binding:"omitempty,min=1"`
	PostedAt      *time.Time `json:"posted_at"`
}

func (r updateScheduledPostRequest) toPatch() domain.ScheduledPostPatch {
	return domain.ScheduledPostPatch{
		VideoID:       r.VideoID,
		Platform:      r.Platform,
		ScheduledTime: r.ScheduledTime,
		Caption:       r.Caption,
		Hashtags:      r.Hashtags,
		Status:        r.Status,
		PostedAt:      r.PostedAt,
	}
}

func (h *Handler) ListScheduledPosts(c *gin.Context) {
	var (
		posts []domain.ScheduledPost
		err   error
	)
	if statuses := statusFilter(c); len(statuses) > 0 {
		posts, err = h.stores.ScheduledPosts.ListByStatus(c.Request.Context(), statuses...)
	} else {
		posts, err = h.stores.ScheduledPosts.List(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err, "", "Failed to fetch scheduled posts")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *Handler) GetScheduledPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.stores.ScheduledPosts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Post not found", "Failed to fetch scheduled post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) CreateScheduledPost(c *gin.Context) {
	var req createScheduledPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid post data", err)
		return
	}

	post, err := h.posts.Schedule(c.Request.Context(), domain.ScheduledPost{
		VideoID:       req.VideoID,
		Platform:      req.Platform,
		ScheduledTime: *req.ScheduledTime,
		Caption:       req.Caption,
		Hashtags:      req.Hashtags,
		Status:        req.Status,
	})
	if err != nil {
		h.fail(c, err, "", "Failed to create scheduled post")
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *Handler) UpdateScheduledPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateScheduledPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid post data", err)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		h.fail(c, err, "Post not found", "Failed to update scheduled post")
		return
	}
	c.JSON(http.StatusOK, post)
}
