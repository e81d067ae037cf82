package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type ScheduledPostStore struct {
	db *sqlx.DB
}

func NewScheduledPostStore(db *sqlx.DB) *ScheduledPostStore {
	return &ScheduledPostStore{db: db}
}

func (s *ScheduledPostStore) List(ctx context.Context) ([]domain.ScheduledPost, error) {
	return s.ListByStatus(ctx)
}

func (s *ScheduledPostStore) ListByStatus(ctx context.Context, statuses ...string) ([]domain.ScheduledPost, error) {
	where, args := statusFilter(statuses)

	posts := []domain.ScheduledPost{}
	err := selectAll(ctx, s.db, &posts,
		"SELECT * FROM scheduled_posts"+where+" ORDER BY scheduled_time ASC, id ASC", args...)
	if err != nil {
		return nil, fmt.Errorf("list scheduled posts: %w", err)
	}
	return posts, nil
}

func (s *ScheduledPostStore) Get(ctx context.Context, id int64) (*domain.ScheduledPost, error) {
	var post domain.ScheduledPost
	if err := getOne(ctx, s.db, &post, "scheduled post", id,
		"SELECT * FROM scheduled_posts WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *ScheduledPostStore) Create(ctx context.Context, post domain.ScheduledPost) (*domain.ScheduledPost, error) {
	post.SetDefaults()

	query := `
		INSERT INTO scheduled_posts (
			video_id, platform, scheduled_time, caption, hashtags, status, posted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		RETURNING *`

	var created domain.ScheduledPost
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		post.VideoID,
		post.Platform,
		post.ScheduledTime,
		post.Caption,
		post.Hashtags,
		post.Status,
		post.PostedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert scheduled post: %w", err)
	}
	return &created, nil
}

func (s *ScheduledPostStore) Update(ctx context.Context, id int64, patch domain.ScheduledPostPatch) (*domain.ScheduledPost, error) {
	query := `
		UPDATE scheduled_posts SET
			video_id = COALESCE($2, video_id),
			platform = COALESCE($3, platform),
			scheduled_time = COALESCE($4, scheduled_time),
			caption = COALESCE($5, caption),
			hashtags = COALESCE($6, hashtags),
			status = COALESCE($7, status),
			posted_at = COALESCE($8, posted_at)
		WHERE id = $1
		RETURNING *`

	var updated domain.ScheduledPost
	err := getOne(ctx, s.db, &updated, "scheduled post", id, query,
		id,
		patch.VideoID,
		patch.Platform,
		patch.ScheduledTime,
		patch.Caption,
		patch.Hashtags,
		patch.Status,
		patch.PostedAt,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
