package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type ViralVideoStore struct {
	db *sqlx.DB
}

func NewViralVideoStore(db *sqlx.DB) *ViralVideoStore {
	return &ViralVideoStore{db: db}
}

func (s *ViralVideoStore) List(ctx context.Context) ([]domain.ViralVideo, error) {
	videos := []domain.ViralVideo{}
	err := selectAll(ctx, s.db, &videos,
		"SELECT * FROM viral_videos ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list viral videos: %w", err)
	}
	return videos, nil
}

func (s *ViralVideoStore) Get(ctx context.Context, id int64) (*domain.ViralVideo, error) {
	var video domain.ViralVideo
	if err := getOne(ctx, s.db, &video, "viral video", id,
		"SELECT * FROM viral_videos WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *ViralVideoStore) Create(ctx context.Context, video domain.ViralVideo) (*domain.ViralVideo, error) {
	video.SetDefaults()

	query := `
		INSERT INTO viral_videos (
			title, platform, url, views, engagement_rate, ai_score,
			captions, hashtags, audio_transcript, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING *`

	var created domain.ViralVideo
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		video.Title,
		video.Platform,
		video.URL,
		video.Views,
		video.EngagementRate,
		video.AIScore,
		video.Captions,
		video.Hashtags,
		video.AudioTranscript,
		video.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert viral video: %w", err)
	}
	return &created, nil
}

func (s *ViralVideoStore) Update(ctx context.Context, id int64, patch domain.ViralVideoPatch) (*domain.ViralVideo, error) {
	query := `
		UPDATE viral_videos SET
			title = COALESCE($2, title),
			platform = COALESCE($3, platform),
			url = COALESCE($4, url),
			views = COALESCE($5, views),
			engagement_rate = COALESCE($6, engagement_rate),
			ai_score = COALESCE($7, ai_score),
			captions = COALESCE($8, captions),
			hashtags = COALESCE($9, hashtags),
			audio_transcript = COALESCE($10, audio_transcript),
			status = COALESCE($11, status),
			updated_at = now()
		WHERE id = $1
		RETURNING *`

	var updated domain.ViralVideo
	err := getOne(ctx, s.db, &updated, "viral video", id, query,
		id,
		patch.Title,
		patch.Platform,
		patch.URL,
		patch.Views,
		patch.EngagementRate,
		patch.AIScore,
		patch.Captions,
		patch.Hashtags,
		patch.AudioTranscript,
		patch.Status,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
