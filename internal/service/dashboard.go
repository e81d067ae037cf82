package service

import (
	"context"
	"fmt"

	"content_studio/internal/domain"
)

type DashboardService struct {
	analytics   AnalyticsStore
	videos      VideoStore
	viralVideos ViralVideoStore
}

func NewDashboardService(analytics AnalyticsStore, videos VideoStore, viralVideos ViralVideoStore) *DashboardService {
	return &DashboardService{
		analytics:   analytics,
		videos:      videos,
		viralVideos: viralVideos,
	}
}

// Stats aggregates every analytics row. With no rows all aggregates are zero.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	rows, err := s.analytics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	videos, err := s.videos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	viral, err := s.viralVideos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list viral videos: %w", err)
	}

	stats := &domain.DashboardStats{
		VideosCreated:    len(videos),
		ViralVideosFound: len(viral),
	}

	var engagement, conversion float64
	for _, a := range rows {
		stats.MonthlyRevenue += a.Revenue
		stats.TotalViews += a.Views
		engagement += a.EngagementRate
		conversion += a.ConversionRate
	}
	if n := float64(len(rows)); n > 0 {
		stats.AvgEngagement = engagement / n
		stats.ConversionRate = conversion / n
	}

	return stats, nil
}
