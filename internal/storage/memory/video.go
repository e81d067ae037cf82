package memory

import (
	"context"

	"content_studio/internal/domain"
)

type VideoStore struct {
	s *Store
}

func (vs *VideoStore) List(_ context.Context) ([]domain.Video, error) {
	return vs.s.videos.selectSorted(nil, func(a, b domain.Video) bool {
		return newestFirst(a.GeneratedAt, b.GeneratedAt, a.ID, b.ID)
	}), nil
}

func (vs *VideoStore) Get(_ context.Context, id int64) (*domain.Video, error) {
	video, ok := vs.s.videos.get(id)
	if !ok {
		return nil, notFound("video", id)
	}
	return &video, nil
}

func (vs *VideoStore) Create(_ context.Context, video domain.Video) (*domain.Video, error) {
	video.SetDefaults()
	now := vs.s.timestamp()
	created := vs.s.videos.insert(func(id int64) domain.Video {
		video.ID = id
		video.GeneratedAt = now
		return video
	})
	return &created, nil
}

// Update merges the patch; videos carry no update timestamp.
func (vs *VideoStore) Update(_ context.Context, id int64, patch domain.VideoPatch) (*domain.Video, error) {
	updated, ok := vs.s.videos.update(id, patch.Apply)
	if !ok {
		return nil, notFound("video", id)
	}
	return &updated, nil
}
