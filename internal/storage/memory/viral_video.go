package memory

import (
	"context"

	"content_studio/internal/domain"
)

type ViralVideoStore struct {
	s *Store
}

func (vs *ViralVideoStore) List(_ context.Context) ([]domain.ViralVideo, error) {
	return vs.s.viralVideos.selectSorted(nil, func(a, b domain.ViralVideo) bool {
		return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID)
	}), nil
}

func (vs *ViralVideoStore) Get(_ context.Context, id int64) (*domain.ViralVideo, error) {
	video, ok := vs.s.viralVideos.get(id)
	if !ok {
		return nil, notFound("viral video", id)
	}
	return &video, nil
}

func (vs *ViralVideoStore) Create(_ context.Context, video domain.ViralVideo) (*domain.ViralVideo, error) {
	video.SetDefaults()
	now := vs.s.timestamp()
	created := vs.s.viralVideos.insert(func(id int64) domain.ViralVideo {
		video.ID = id
		video.CreatedAt = now
		video.UpdatedAt = now
		return video
	})
	return &created, nil
}

func (vs *ViralVideoStore) Update(_ context.Context, id int64, patch domain.ViralVideoPatch) (*domain.ViralVideo, error) {
	now := vs.s.timestamp()
	updated, ok := vs.s.viralVideos.update(id, func(v *domain.ViralVideo) {
		patch.Apply(v)
		v.UpdatedAt = now
	})
	if !ok {
		return nil, notFound("viral video", id)
	}
	return &updated, nil
}
