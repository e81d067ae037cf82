package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content_studio/internal/domain"
)

type createScriptRequest struct {
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content" binding:"required"`
	ContentType    string `json:"content_type" binding:"required"`
	VideoLength    string `json:"video_length" binding:"required"`
	TargetAudience string `json:"target_audience" binding:"required"`
	TemplateType   string `json:"template_type" binding:"required"`
	AIGenerated    bool   `json:"ai_generated"`
	Status         string `json:"status"`
}

type updateScriptRequest struct {
	Title          *string `json:"title" binding:"omitempty,min=1"`
	Content        *string `json:"content" binding:"omitempty,min=1"`
	ContentType    *string `json:"content_type" binding:"omitempty,min=1"`
	VideoLength    *string `json:"video_length" binding:"omitempty,min=1"`
	TargetAudience *string `json:"target_audience" binding:"omitempty,min=1"`
	TemplateType   *string `json:"template_type" binding:"omitempty,min=1"`
	AIGenerated    *bool   `json:"ai_generated"`
	Status         *string `json:"status" binding:"omitempty,min=1"`
}

func (r updateScriptRequest) toPatch() domain.ScriptPatch {
	return domain.ScriptPatch{
		Title:          r.Title,
		Content:        r.Content,
		ContentType:    r.ContentType,
		VideoLength:    r.VideoLength,
		TargetAudience: r.TargetAudience,
		TemplateType:   r.TemplateType,
		AIGenerated:    r.AIGenerated,
		Status:         r.Status,
	}
}

func (r createScriptRequest) toDomain() domain.Script {
	return domain.Script{
		Title:          r.Title,
		Content:        r.Content,
		ContentType:    r.ContentType,
		VideoLength:    r.VideoLength,
		TargetAudience: r.TargetAudience,
		TemplateType:   r.TemplateType,
		AIGenerated:    r.AIGenerated,
		Status:         r.Status,
	}
}

func (h *Handler) ListScripts(c *gin.Context) {
	var (
		scripts []domain.Script
		err     error
	)
	if statuses := statusFilter(c); len(statuses) > 0 {
		scripts, err = h.stores.Scripts.ListByStatus(c.Request.Context(), statuses...)
	} else {
		scripts, err = h.stores.Scripts.List(c.Request.Context())
	}
	if err != nil {
		h.fail(c, err, "", "Failed to fetch scripts")
		return
	}
	c.JSON(http.StatusOK, scripts)
}

func (h *Handler) GetScript(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	script, err := h.stores.Scripts.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Script not found", "Failed to fetch script")
		return
	}
	c.JSON(http.StatusOK, script)
}

func (h *Handler) CreateScript(c *gin.Context) {
	var req createScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid script data", err)
		return
	}

	script, err := h.stores.Scripts.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		h.fail(c, err, "", "Failed to create script")
		return
	}
	c.JSON(http.StatusOK, script)
}

func (h *Handler) GenerateScript(c *gin.Context) {
	var req domain.ScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Missing required fields", err)
		return
	}

	result, err := h.content.GenerateScript(c.Request.Context(), req)
	if errors.Is(err, domain.ErrValidation) {
		h.badRequest(c, "Missing required fields", nil)
		return
	}
	if err != nil {
		h.fail(c, err, "", "Failed to generate script")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateScript(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid script data", err)
		return
	}

	script, err := h.stores.Scripts.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		h.fail(c, err, "Script not found", "Failed to update script")
		return
	}
	c.JSON(http.StatusOK, script)
}
