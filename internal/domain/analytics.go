package domain

import "time"

// Analytics is an append-only measurement snapshot.
type Analytics struct {
	ID             int64     `json:"id" db:"id"`
	VideoID        *int64    `json:"video_id" db:"video_id"`
	Platform       string    `json:"platform" db:"platform"`
	Views          int64     `json:"views" db:"views"`
	EngagementRate float64   `json:"engagement_rate" db:"engagement_rate"`
	Revenue        float64   `json:"revenue" db:"revenue"`
	ConversionRate float64   `json:"conversion_rate" db:"conversion_rate"`
	Date           time.Time `json:"date" db:"date"`
}

// DashboardStats aggregates analytics and record counts.
type DashboardStats struct {
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	VideosCreated    int     `json:"videos_created"`
	AvgEngagement    float64 `json:"avg_engagement"`
	ConversionRate   float64 `json:"conversion_rate"`
	TotalViews       int64   `json:"total_views"`
	ViralVideosFound int     `json:"viral_videos_found"`
}
