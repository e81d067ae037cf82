package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

func (s *VideoStore) List(ctx context.Context) ([]domain.Video, error) {
	videos := []domain.Video{}
	err := selectAll(ctx, s.db, &videos,
		"SELECT * FROM videos ORDER BY generated_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

func (s *VideoStore) Get(ctx context.Context, id int64) (*domain.Video, error) {
	var video domain.Video
	if err := getOne(ctx, s.db, &video, "video", id,
		"SELECT * FROM videos WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &video, nil
}

func (s *VideoStore) Create(ctx context.Context, video domain.Video) (*domain.Video, error) {
	video.SetDefaults()

	query := `
		INSERT INTO videos (script_id, title, filename, duration, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *`

	var created domain.Video
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		video.ScriptID,
		video.Title,
		video.Filename,
		video.Duration,
		video.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert video: %w", err)
	}
	return &created, nil
}

func (s *VideoStore) Update(ctx context.Context, id int64, patch domain.VideoPatch) (*domain.Video, error) {
	query := `
		UPDATE videos SET
			script_id = COALESCE($2, script_id),
			title = COALESCE($3, title),
			filename = COALESCE($4, filename),
			duration = COALESCE($5, duration),
			status = COALESCE($6, status)
		WHERE id = $1
		RETURNING *`

	var updated domain.Video
	err := getOne(ctx, s.db, &updated, "video", id, query,
		id,
		patch.ScriptID,
		patch.Title,
		patch.Filename,
		patch.Duration,
		patch.Status,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
