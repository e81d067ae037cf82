package memory

import (
	"context"

	"content_studio/internal/domain"
)

type AnalyticsStore struct {
	s *Store
}

func byDateDesc(a, b domain.Analytics) bool {
	return newestFirst(a.Date, b.Date, a.ID, b.ID)
}

func (as *AnalyticsStore) List(_ context.Context) ([]domain.Analytics, error) {
	return as.s.analytics.selectSorted(nil, byDateDesc), nil
}

func (as *AnalyticsStore) ListByVideo(_ context.Context, videoID int64) ([]domain.Analytics, error) {
	return as.s.analytics.selectSorted(func(a domain.Analytics) bool {
		return a.VideoID != nil && *a.VideoID == videoID
	}, byDateDesc), nil
}

func (as *AnalyticsStore) Get(_ context.Context, id int64) (*domain.Analytics, error) {
	row, ok := as.s.analytics.get(id)
	if !ok {
		return nil, notFound("analytics", id)
	}
	return &row, nil
}

func (as *AnalyticsStore) Create(_ context.Context, analytics domain.Analytics) (*domain.Analytics, error) {
	now := as.s.timestamp()
	created := as.s.analytics.insert(func(id int64) domain.Analytics {
		analytics.ID = id
		analytics.Date = now
		return analytics
	})
	return &created, nil
}
