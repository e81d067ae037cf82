package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type AnalyticsStore struct {
	db *sqlx.DB
}

func NewAnalyticsStore(db *sqlx.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

func (s *AnalyticsStore) List(ctx context.Context) ([]domain.Analytics, error) {
	rows := []domain.Analytics{}
	err := selectAll(ctx, s.db, &rows,
		"SELECT * FROM analytics ORDER BY date DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	return rows, nil
}

func (s *AnalyticsStore) ListByVideo(ctx context.Context, videoID int64) ([]domain.Analytics, error) {
	rows := []domain.Analytics{}
	err := selectAll(ctx, s.db, &rows,
		"SELECT * FROM analytics WHERE video_id = $1 ORDER BY date DESC, id DESC", videoID)
	if err != nil {
		return nil, fmt.Errorf("list analytics for video %d: %w", videoID, err)
	}
	return rows, nil
}

func (s *AnalyticsStore) Get(ctx context.Context, id int64) (*domain.Analytics, error) {
	var row domain.Analytics
	if err := getOne(ctx, s.db, &row, "analytics", id,
		"SELECT * FROM analytics WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *AnalyticsStore) Create(ctx context.Context, analytics domain.Analytics) (*domain.Analytics, error) {
	query := `
		INSERT INTO analytics (
			video_id, platform, views, engagement_rate, revenue, conversion_rate
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		RETURNING *`

	var created domain.Analytics
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		analytics.VideoID,
		analytics.Platform,
		analytics.Views,
		analytics.EngagementRate,
		analytics.Revenue,
		analytics.ConversionRate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert analytics: %w", err)
	}
	return &created, nil
}
