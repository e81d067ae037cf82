// Package storage defines the record store contract shared by the memory and
// postgres backings and selects one of them at startup.
package storage

import (
	"context"

	"content_studio/internal/domain"
)

type ViralVideoStore interface {
	List(ctx context.Context) ([]domain.ViralVideo, error)
	Get(ctx context.Context, id int64) (*domain.ViralVideo, error)
	Create(ctx context.Context, video domain.ViralVideo) (*domain.ViralVideo, error)
	Update(ctx context.Context, id int64, patch domain.ViralVideoPatch) (*domain.ViralVideo, error)
}

type AffiliateProductStore interface {
	List(ctx context.Context) ([]domain.AffiliateProduct, error)
	Get(ctx context.Context, id int64) (*domain.AffiliateProduct, error)
	Create(ctx context.Context, product domain.AffiliateProduct) (*domain.AffiliateProduct, error)
}

type ScriptStore interface {
	List(ctx context.Context) ([]domain.Script, error)
	ListByStatus(ctx context.Context, statuses ...string) ([]domain.Script, error)
	Get(ctx context.Context, id int64) (*domain.Script, error)
	Create(ctx context.Context, script domain.Script) (*domain.Script, error)
	Update(ctx context.Context, id int64, patch domain.ScriptPatch) (*domain.Script, error)
}

type VideoStore interface {
	List(ctx context.Context) ([]domain.Video, error)
	Get(ctx context.Context, id int64) (*domain.Video, error)
	Create(ctx context.Context, video domain.Video) (*domain.Video, error)
	Update(ctx context.Context, id int64, patch domain.VideoPatch) (*domain.Video, error)
}

type ScheduledPostStore interface {
	List(ctx context.Context) ([]domain.ScheduledPost, error)
	ListByStatus(ctx context.Context, statuses ...string) ([]domain.ScheduledPost, error)
	Get(ctx context.Context, id int64) (*domain.ScheduledPost, error)
	Create(ctx context.Context, post domain.ScheduledPost) (*domain.ScheduledPost, error)
	Update(ctx context.Context, id int64, patch domain.ScheduledPostPatch) (*domain.ScheduledPost, error)
}

type AnalyticsStore interface {
	List(ctx context.Context) ([]domain.Analytics, error)
	ListByVideo(ctx context.Context, videoID int64) ([]domain.Analytics, error)
	Get(ctx context.Context, id int64) (*domain.Analytics, error)
	Create(ctx context.Context, analytics domain.Analytics) (*domain.Analytics, error)
}

// Stores bundles one store per entity type from the same backing.
type Stores struct {
	ViralVideos       ViralVideoStore
	AffiliateProducts AffiliateProductStore
	Scripts           ScriptStore
	Videos            VideoStore
	ScheduledPosts    ScheduledPostStore
	Analytics         AnalyticsStore

	// Ping reports backing health; nil for backings that cannot fail.
	Ping func(ctx context.Context) error
}
