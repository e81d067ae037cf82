package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_studio/internal/domain"
	"content_studio/internal/generator"
)

type ViralVideoStore interface {
	List(ctx context.Context) ([]domain.ViralVideo, error)
	Get(ctx context.Context, id int64) (*domain.ViralVideo, error)
	Update(ctx context.Context, id int64, patch domain.ViralVideoPatch) (*domain.ViralVideo, error)
}

type ScriptStore interface {
	Create(ctx context.Context, script domain.Script) (*domain.Script, error)
}

type VideoStore interface {
	List(ctx context.Context) ([]domain.Video, error)
}

type ScheduledPostStore interface {
	Create(ctx context.Context, post domain.ScheduledPost) (*domain.ScheduledPost, error)
	Update(ctx context.Context, id int64, patch domain.ScheduledPostPatch) (*domain.ScheduledPost, error)
}

type AnalyticsStore interface {
	List(ctx context.Context) ([]domain.Analytics, error)
}

type Generator interface {
	AnalyzeViralVideo(ctx context.Context, in generator.AnalysisInput) (*domain.VideoAnalysis, error)
	GenerateScript(ctx context.Context, req domain.ScriptRequest) (*domain.GeneratedScript, error)
	ScoreAuthenticity(ctx context.Context, content string) int
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
