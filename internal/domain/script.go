package domain

import "time"

const (
	ScriptDraft    = "draft"
	ScriptApproved = "approved"
	ScriptUsed     = "used"
)

// Script follows the hook/problem/solution/proof/cta structure.
type Script struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	ContentType    string    `json:"content_type" db:"content_type"`
	VideoLength    string    `json:"video_length" db:"video_length"`
	TargetAudience string    `json:"target_audience" db:"target_audience"`
	TemplateType   string    `json:"template_type" db:"template_type"`
	AIGenerated    bool      `json:"ai_generated" db:"ai_generated"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

func (s *Script) SetDefaults() {
	if s.Status == "" {
		s.Status = ScriptDraft
	}
}

type ScriptPatch struct {
	Title          *string `json:"title"`
	Content        *string `json:"content"`
	ContentType    *string `json:"content_type"`
	VideoLength    *string `json:"video_length"`
	TargetAudience *string `json:"target_audience"`
	TemplateType   *string `json:"template_type"`
	AIGenerated    *bool   `json:"ai_generated"`
	Status         *string `json:"status"`
}

func (p ScriptPatch) Apply(s *Script) {
	set(&s.Title, p.Title)
	set(&s.Content, p.Content)
	set(&s.ContentType, p.ContentType)
	set(&s.VideoLength, p.VideoLength)
	set(&s.TargetAudience, p.TargetAudience)
	set(&s.TemplateType, p.TemplateType)
	set(&s.AIGenerated, p.AIGenerated)
	set(&s.Status, p.Status)
}
