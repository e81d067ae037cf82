package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_studio/internal/domain"
)

// PostService writes scheduled posts and announces each change so an
// external poster can act on it.
type PostService struct {
	posts  ScheduledPostStore
	events events
	now    func() time.Time
}

func NewPostService(posts ScheduledPostStore, publisher Publisher, logger *slog.Logger) *PostService {
	return &PostService{
		posts:  posts,
		events: events{publisher: publisher, logger: logger.With("component", "post_service")},
		now:    time.Now,
	}
}

// Schedule stores post with its times in UTC.
func (s *PostService) Schedule(ctx context.Context, post domain.ScheduledPost) (*domain.ScheduledPost, error) {
	post.ScheduledTime = post.ScheduledTime.UTC()
	post.PostedAt = inUTC(post.PostedAt)

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create scheduled post: %w", err)
	}

	s.events.emit(ctx, domain.ResourceScheduledPost, domain.ActionCreated, created.ID, created)
	return created, nil
}

// Update applies patch with its times in UTC. Moving a post to posted
// without a posted_at stamps the current time.
func (s *PostService) Update(ctx context.Context, id int64, patch domain.ScheduledPostPatch) (*domain.ScheduledPost, error) {
	patch.ScheduledTime = inUTC(patch.ScheduledTime)
	patch.PostedAt = inUTC(patch.PostedAt)
	if patch.Status != nil && *patch.Status == domain.PostPosted && patch.PostedAt == nil {
		postedAt := s.now().UTC()
		patch.PostedAt = &postedAt
	}

	updated, err := s.posts.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update scheduled post %d: %w", id, err)
	}

	s.events.emit(ctx, domain.ResourceScheduledPost, domain.ActionUpdated, id, updated)
	return updated, nil
}

func inUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
