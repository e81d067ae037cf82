package domain

// VideoAnalysis is the generator's assessment of a viral video.
type VideoAnalysis struct {
	Score             int      `json:"score"`
	EngagementQuality string   `json:"engagement_quality"`
	ContentThemes     []string `json:"content_themes"`
	SuccessFactors    []string `json:"success_factors"`
	Recommendations   []string `json:"recommendations"`
}

// GeneratedScript is a five-part script produced by the generator.
type GeneratedScript struct {
	Title               string   `json:"title"`
	Hook                string   `json:"hook"`
	Problem             string   `json:"problem"`
	Solution            string   `json:"solution"`
	Proof               string   `json:"proof"`
	CTA                 string   `json:"cta"`
	FullScript          string   `json:"full_script"`
	Hashtags            []string `json:"hashtags"`
	EstimatedEngagement int      `json:"estimated_engagement"`
}

type ScriptRequest struct {
	ContentType    string `json:"content_type"`
	VideoLength    string `json:"video_length"`
	TargetAudience string `json:"target_audience"`
	KeyMessage     string `json:"key_message"`
	TemplateType   string `json:"template_type"`
}

// Complete reports whether every generation parameter is present.
func (r ScriptRequest) Complete() bool {
	return r.ContentType != "" && r.VideoLength != "" && r.TargetAudience != "" &&
		r.KeyMessage != "" && r.TemplateType != ""
}

type AnalysisResult struct {
	Analysis *VideoAnalysis `json:"analysis"`
	Video    *ViralVideo    `json:"video"`
}

type ScriptGeneration struct {
	Script    *Script          `json:"script"`
	Generated *GeneratedScript `json:"generated"`
}
