package domain

import "time"

const (
	VideoGenerating = "generating"
	VideoReady      = "ready"
	VideoPosted     = "posted"
)

type Video struct {
	ID          int64     `json:"id" db:"id"`
	ScriptID    *int64    `json:"script_id" db:"script_id"` // may reference a missing script
	Title       string    `json:"title" db:"title"`
	Filename    *string   `json:"filename" db:"filename"`
	Duration    *int      `json:"duration" db:"duration"` // seconds
	Status      string    `json:"status" db:"status"`
	GeneratedAt time.Time `json:"generated_at" db:"generated_at"`
}

func (v *Video) SetDefaults() {
	if v.Status == "" {
		v.Status = VideoGenerating
	}
	v.Filename = nonEmpty(v.Filename)
}

type VideoPatch struct {
	ScriptID *int64  `json:"script_id"`
	Title    *string `json:"title"`
	Filename *string `json:"filename"`
	Duration *int    `json:"duration"`
	Status   *string `json:"status"`
}

func (p VideoPatch) Apply(v *Video) {
	setPtr(&v.ScriptID, p.ScriptID)
	set(&v.Title, p.Title)
	setPtr(&v.Filename, p.Filename)
	setPtr(&v.Duration, p.Duration)
	set(&v.Status, p.Status)
}
