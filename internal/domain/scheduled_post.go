package domain

import "time"

const (
	PostScheduled = "scheduled"
	PostPosted    = "posted"
	PostFailed    = "failed"
	PostCancelled = "cancelled"
)

// ScheduledPost records the intent to publish a video; nothing in this
// service performs the posting itself.
type ScheduledPost struct {
	ID            int64      `json:"id" db:"id"`
	VideoID       *int64     `json:"video_id" db:"video_id"`
	Platform      string     `json:"platform" db:"platform"`
	ScheduledTime time.Time  `json:"scheduled_time" db:"scheduled_time"`
	Caption       *string    `json:"caption" db:"caption"`
	Hashtags      *string    `json:"hashtags" db:"hashtags"`
	Status        string     `json:"status" db:"status"`
	PostedAt      *time.Time `json:"posted_at" db:"posted_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

func (p *ScheduledPost) SetDefaults() {
	if p.Status == "" {
		p.Status = PostScheduled
	}
	p.Caption = nonEmpty(p.Caption)
	p.Hashtags = nonEmpty(p.Hashtags)
}

type ScheduledPostPatch struct {
	VideoID       *int64     `json:"video_id"`
	Platform      *string    `json:"platform"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Caption       *string    `json:"caption"`
	Hashtags      *string    `json:"hashtags"`
	Status        *string    `json:"status"`
	PostedAt      *time.Time `json:"posted_at"`
}

func (p ScheduledPostPatch) Apply(post *ScheduledPost) {
	setPtr(&post.VideoID, p.VideoID)
	set(&post.Platform, p.Platform)
	set(&post.ScheduledTime, p.ScheduledTime)
	setPtr(&post.Caption, p.Caption)
	setPtr(&post.Hashtags, p.Hashtags)
	set(&post.Status, p.Status)
	setPtr(&post.PostedAt, p.PostedAt)
}
