package generator

import (
	"context"
	"fmt"

	"content_studio/internal/domain"
)

const (
	defaultScriptTitle = "Untitled Script"
	defaultEngagement  = 50
)

type scriptReply struct {
	Title               string   `json:"title" jsonschema_description:"Compelling video title"`
	Hook                string   `json:"hook" jsonschema_description:"Opening line"`
	Problem             string   `json:"problem"`
	Solution            string   `json:"solution"`
	Proof               string   `json:"proof" jsonschema_description:"Credibility and proof points"`
	CTA                 string   `json:"cta" jsonschema_description:"Call to action"`
	FullScript          string   `json:"full_script" jsonschema_description:"Complete script text"`
	Hashtags            []string `json:"hashtags"`
	EstimatedEngagement *float64 `json:"estimated_engagement" jsonschema:"minimum=0,maximum=100" jsonschema_description:"Predicted engagement rate from 0 to 100"`
}

var scriptSchema = generateSchema[scriptReply]()

// GenerateScript writes a five-part affiliate marketing script.
func (c *Client) GenerateScript(ctx context.Context, req domain.ScriptRequest) (*domain.GeneratedScript, error) {
	const op = "generate script"

	prompt := fmt.Sprintf(scriptPrompt,
		req.ContentType, req.VideoLength, req.TargetAudience, req.KeyMessage, req.TemplateType)

	reply, err := completeJSON[scriptReply](ctx, c, scriptSystemPrompt, prompt, 0.7, jsonFormat{
		name:        "generated_script",
		description: "A viral affiliate marketing video script",
		schema:      scriptSchema,
	})
	if err != nil {
		c.logger.Error("script generation failed", "content_type", req.ContentType, "error", err)
		return nil, &Error{Op: op, Err: err}
	}

	return reply.normalize(), nil
}

func (r *scriptReply) normalize() *domain.GeneratedScript {
	title := r.Title
	if title == "" {
		title = defaultScriptTitle
	}

	engagement := defaultEngagement
	if r.EstimatedEngagement != nil {
		engagement = clampPercent(*r.EstimatedEngagement)
	}

	return &domain.GeneratedScript{
		Title:               title,
		Hook:                r.Hook,
		Problem:             r.Problem,
		Solution:            r.Solution,
		Proof:               r.Proof,
		CTA:                 r.CTA,
		FullScript:          r.FullScript,
		Hashtags:            orEmpty(r.Hashtags),
		EstimatedEngagement: engagement,
	}
}
