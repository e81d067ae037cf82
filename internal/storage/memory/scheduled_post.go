package memory

import (
	"context"

	"content_studio/internal/domain"
)

type ScheduledPostStore struct {
	s *Store
}

func (ps *ScheduledPostStore) List(ctx context.Context) ([]domain.ScheduledPost, error) {
	return ps.ListByStatus(ctx)
}

// ListByStatus orders chronologically by scheduled time.
func (ps *ScheduledPostStore) ListByStatus(_ context.Context, statuses ...string) ([]domain.ScheduledPost, error) {
	match := statusIn(statuses)
	return ps.s.scheduledPosts.selectSorted(
		func(p domain.ScheduledPost) bool { return match(p.Status) },
		func(a, b domain.ScheduledPost) bool {
			if !a.ScheduledTime.Equal(b.ScheduledTime) {
				return a.ScheduledTime.Before(b.ScheduledTime)
			}
			return a.ID < b.ID
		},
	), nil
}

func (ps *ScheduledPostStore) Get(_ context.Context, id int64) (*domain.ScheduledPost, error) {
	post, ok := ps.s.scheduledPosts.get(id)
	if !ok {
		return nil, notFound("scheduled post", id)
	}
	return &post, nil
}

func (ps *ScheduledPostStore) Create(_ context.Context, post domain.ScheduledPost) (*domain.ScheduledPost, error) {
	post.SetDefaults()
	now := ps.s.timestamp()
	created := ps.s.scheduledPosts.insert(func(id int64) domain.ScheduledPost {
		post.ID = id
		post.CreatedAt = now
		return post
	})
	return &created, nil
}

func (ps *ScheduledPostStore) Update(_ context.Context, id int64, patch domain.ScheduledPostPatch) (*domain.ScheduledPost, error) {
	updated, ok := ps.s.scheduledPosts.update(id, patch.Apply)
	if !ok {
		return nil, notFound("scheduled post", id)
	}
	return &updated, nil
}
