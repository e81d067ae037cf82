package generator

import (
	"context"
	"fmt"

	"content_studio/internal/domain"
)

type AnalysisInput struct {
	Title          string
	Captions       string
	Hashtags       string
	Views          int64
	EngagementRate float64
}

// AnalysisInputFrom reads the prompt fields off a stored video. Absent text
// is sent as empty.
func AnalysisInputFrom(v *domain.ViralVideo) AnalysisInput {
	in := AnalysisInput{
		Title:          v.Title,
		Views:          v.Views,
		EngagementRate: v.EngagementRate,
	}
	if v.Captions != nil {
		in.Captions = *v.Captions
	}
	if v.Hashtags != nil {
		in.Hashtags = *v.Hashtags
	}
	return in
}

type analysisReply struct {
	Score             *float64 `json:"score" jsonschema:"minimum=0,maximum=100" jsonschema_description:"Affiliate marketing potential from 0 to 100"`
	EngagementQuality string   `json:"engagement_quality" jsonschema:"enum=poor,enum=good,enum=excellent"`
	ContentThemes     []string `json:"content_themes" jsonschema_description:"Main themes of the video"`
	SuccessFactors    []string `json:"success_factors" jsonschema_description:"What makes the video successful"`
	Recommendations   []string `json:"recommendations" jsonschema_description:"How to adapt the video for affiliate marketing"`
}

var analysisSchema = generateSchema[analysisReply]()

// AnalyzeViralVideo scores a video's affiliate marketing potential.
func (c *Client) AnalyzeViralVideo(ctx context.Context, in AnalysisInput) (*domain.VideoAnalysis, error) {
	const op = "analyze viral video"

	prompt := fmt.Sprintf(analysisPrompt, in.Title, in.Captions, in.Hashtags, in.Views, in.EngagementRate)

	reply, err := completeJSON[analysisReply](ctx, c, analysisSystemPrompt, prompt, 0.3, jsonFormat{
		name:        "video_analysis",
		description: "Affiliate marketing analysis of a viral video",
		schema:      analysisSchema,
	})
	if err != nil {
		c.logger.Error("analysis failed", "title", in.Title, "error", err)
		return nil, &Error{Op: op, Err: err}
	}

	return reply.normalize(), nil
}

func (r *analysisReply) normalize() *domain.VideoAnalysis {
	score := 0
	if r.Score != nil {
		score = clampPercent(*r.Score)
	}

	quality := r.EngagementQuality
	if quality == "" {
		quality = "good"
	}

	return &domain.VideoAnalysis{
		Score:             score,
		EngagementQuality: quality,
		ContentThemes:     orEmpty(r.ContentThemes),
		SuccessFactors:    orEmpty(r.SuccessFactors),
		Recommendations:   orEmpty(r.Recommendations),
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
