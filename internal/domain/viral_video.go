package domain

import "time"

const (
	ViralVideoPending    = "pending"
	ViralVideoProcessing = "processing"
	ViralVideoProcessed  = "processed"
)

// ViralVideo is an externally sourced video scored for marketing reuse.
type ViralVideo struct {
	ID              int64     `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Platform        string    `json:"platform" db:"platform"`
	URL             string    `json:"url" db:"url"`
	Views           int64     `json:"views" db:"views"`
	EngagementRate  float64   `json:"engagement_rate" db:"engagement_rate"`
	AIScore         int       `json:"ai_score" db:"ai_score"`
	Captions        *string   `json:"captions" db:"captions"`
	Hashtags        *string   `json:"hashtags" db:"hashtags"`
	AudioTranscript *string   `json:"audio_transcript" db:"audio_transcript"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

func (v *ViralVideo) SetDefaults() {
	if v.Status == "" {
		v.Status = ViralVideoPending
	}
	v.Captions = nonEmpty(v.Captions)
	v.Hashtags = nonEmpty(v.Hashtags)
	v.AudioTranscript = nonEmpty(v.AudioTranscript)
}

type ViralVideoPatch struct {
	Title           *string  `json:"title"`
	Platform        *string  `json:"platform"`
	URL             *string  `json:"url"`
	Views           *int64   `json:"views"`
	EngagementRate  *float64 `json:"engagement_rate"`
	AIScore         *int     `json:"ai_score"`
	Captions        *string  `json:"captions"`
	Hashtags        *string  `json:"hashtags"`
	AudioTranscript *string  `json:"audio_transcript"`
	Status          *string  `json:"status"`
}

func (p ViralVideoPatch) Apply(v *ViralVideo) {
	set(&v.Title, p.Title)
	set(&v.Platform, p.Platform)
	set(&v.URL, p.URL)
	set(&v.Views, p.Views)
	set(&v.EngagementRate, p.EngagementRate)
	set(&v.AIScore, p.AIScore)
	setPtr(&v.Captions, p.Captions)
	setPtr(&v.Hashtags, p.Hashtags)
	setPtr(&v.AudioTranscript, p.AudioTranscript)
	set(&v.Status, p.Status)
}
