// Package api exposes the record stores and content services over HTTP.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"content_studio/internal/service"
	"content_studio/internal/storage"
)

type Handler struct {
	stores    *storage.Stores
	content   *service.ContentService
	dashboard *service.DashboardService
	posts     *service.PostService
	logger    *slog.Logger
}

func NewHandler(
	stores *storage.Stores,
	content *service.ContentService,
	dashboard *service.DashboardService,
	posts *service.PostService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		stores:    stores,
		content:   content,
		dashboard: dashboard,
		posts:     posts,
		logger:    logger.With("component", "api"),
	}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	registerValidation()

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), requestLogger(h.logger))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	{
		api.GET("/dashboard/stats", h.DashboardStats)

		api.GET("/viral-videos", h.ListViralVideos)
		api.GET("/viral-videos/:id", h.GetViralVideo)
		api.POST("/viral-videos", h.CreateViralVideo)
		api.POST("/viral-videos/:id/analyze", h.AnalyzeViralVideo)

		api.GET("/affiliate-products", h.ListAffiliateProducts)
		api.GET("/affiliate-products/:id", h.GetAffiliateProduct)
		api.POST("/affiliate-products", h.CreateAffiliateProduct)

		api.GET("/scripts", h.ListScripts)
		api.GET("/scripts/:id", h.GetScript)
		api.POST("/scripts", h.CreateScript)
		api.POST("/scripts/generate", h.GenerateScript)
		api.PATCH("/scripts/:id", h.UpdateScript)

		api.GET("/videos", h.ListVideos)
		api.GET("/videos/:id", h.GetVideo)
		api.POST("/videos", h.CreateVideo)
		api.PATCH("/videos/:id", h.UpdateVideo)

		api.GET("/scheduled-posts", h.ListScheduledPosts)
		api.GET("/scheduled-posts/:id", h.GetScheduledPost)
		api.POST("/scheduled-posts", h.CreateScheduledPost)
		api.PATCH("/scheduled-posts/:id", h.UpdateScheduledPost)

		api.GET("/analytics", h.ListAnalytics)
		api.GET("/analytics/video/:videoId", h.ListVideoAnalytics)
		api.GET("/analytics/:id", h.GetAnalytics)
		api.POST("/analytics", h.CreateAnalytics)

		api.POST("/content/score", h.ScoreContent)
	}

	return r
}

// HTTPHandler wraps the router with CORS for the given origins.
func (h *Handler) HTTPHandler(origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return c.Handler(h.Router())
}

func (h *Handler) Health(c *gin.Context) {
	if h.stores.Ping != nil {
		if err := h.stores.Ping(c.Request.Context()); err != nil {
			h.logger.ErrorContext(c.Request.Context(), "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
