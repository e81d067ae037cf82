package generator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_studio/internal/domain"
)

const (
	testBaseURL        = "https://llm.test/v1/"
	testCompletionsURL = testBaseURL + "chat/completions"
)

func newTestClient(t *testing.T, apiKey string) (*Client, *httpmock.MockTransport) {
	t.Helper()
	mt := httpmock.NewMockTransport()
	c := New(Config{
		APIKey:     apiKey,
		BaseURL:    testBaseURL,
		Model:      "gpt-4o",
		Timeout:    5 * time.Second,
		HTTPClient: &http.Client{Transport: mt},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return c, mt
}

func completionBody(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-4o",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
				},
			},
		},
	}
}

func replyWith(t *testing.T, mt *httpmock.MockTransport, content string) {
	t.Helper()
	mt.RegisterResponder(http.MethodPost, testCompletionsURL,
		httpmock.NewJsonResponderOrPanic(http.StatusOK, completionBody(content)))
}

// captureRequest records the decoded request body of every call.
func captureRequest(t *testing.T, mt *httpmock.MockTransport, content string) *map[string]any {
	t.Helper()
	var captured map[string]any
	mt.RegisterResponder(http.MethodPost, testCompletionsURL, func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))
		return httpmock.NewJsonResponse(http.StatusOK, completionBody(content))
	})
	return &captured
}

func TestAnalyzeViralVideo_ParsesReply(t *testing.T) {
	c, mt := newTestClient(t, "sk-test")
	captured := captureRequest(t, mt, `{
		"score": 87,
		"engagement_quality": "excellent",
		"content_themes": ["passive income"],
		"success_factors": ["specific numbers"],
		"recommendations": ["lead with the income figure"]
	}`)

	analysis, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{
		Title:          "5 Side Hustles",
		Captions:       "After testing 20+ side hustles",
		Hashtags:       "#sidehustle",
		Views:          950000,
		EngagementRate: 13.1,
	})
	require.NoError(t, err)

	assert.Equal(t, &domain.VideoAnalysis{
		Score:             87,
		EngagementQuality: "excellent",
		ContentThemes:     []string{"passive income"},
		SuccessFactors:    []string{"specific numbers"},
		Recommendations:   []string{"lead with the income figure"},
	}, analysis)

	req := *captured
	assert.Equal(t, "gpt-4o", req["model"])
	assert.InDelta(t, 0.3, req["temperature"], 0.0001)
	messages, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	user := messages[1].(map[string]any)
	assert.Equal(t, "user", user["role"])
	assert.Contains(t, user["content"], "- Title: 5 Side Hustles")
	assert.Contains(t, user["content"], "- Views: 950000")
	assert.Contains(t, user["content"], "- Engagement Rate: 13.1%")

	format, ok := req["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])

	assert.Equal(t, 1, mt.GetTotalCallCount())
}

func TestAnalyzeViralVideo_ClampsAndDefaults(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		score   int
		quality string
	}{
		{"above range", `{"score": 150}`, 100, "good"},
		{"below range", `{"score": -20, "engagement_quality": "poor"}`, 0, "poor"},
		{"fractional", `{"score": 72.6}`, 73, "good"},
		{"beyond int range", `{"score": 1e20}`, 100, "good"},
		{"far below int range", `{"score": -1e20}`, 0, "good"},
		{"missing", `{}`, 0, "good"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newTestClient(t, "sk-test")
			replyWith(t, mt, tt.reply)

			analysis, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{Title: "x"})
			require.NoError(t, err)
			assert.Equal(t, tt.score, analysis.Score)
			assert.Equal(t, tt.quality, analysis.EngagementQuality)
			assert.NotNil(t, analysis.ContentThemes)
			assert.Empty(t, analysis.ContentThemes)
			assert.NotNil(t, analysis.SuccessFactors)
			assert.NotNil(t, analysis.Recommendations)
		})
	}
}

func TestAnalyzeViralVideo_Failures(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		c, mt := newTestClient(t, "")
		replyWith(t, mt, `{"score": 90}`)

		_, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{Title: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.Zero(t, mt.GetTotalCallCount())
	})

	t.Run("upstream error is not retried", func(t *testing.T) {
		c, mt := newTestClient(t, "sk-test")
		mt.RegisterResponder(http.MethodPost, testCompletionsURL,
			httpmock.NewJsonResponderOrPanic(http.StatusInternalServerError, map[string]any{
				"error": map[string]any{"message": "model overloaded", "type": "server_error"},
			}))

		_, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{Title: "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Contains(t, err.Error(), "failed to analyze viral video: ")

		var genErr *Error
		require.True(t, errors.As(err, &genErr))
		assert.Equal(t, "analyze viral video", genErr.Op)
		assert.Equal(t, 1, mt.GetTotalCallCount())
	})

	t.Run("malformed reply", func(t *testing.T) {
		c, mt := newTestClient(t, "sk-test")
		replyWith(t, mt, "this is not json")

		_, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{Title: "x"})
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Contains(t, err.Error(), "parse model reply")
	})

	t.Run("empty reply", func(t *testing.T) {
		c, mt := newTestClient(t, "sk-test")
		replyWith(t, mt, "")

		_, err := c.AnalyzeViralVideo(context.Background(), AnalysisInput{Title: "x"})
		assert.ErrorIs(t, err, ErrEmptyReply)
	})
}

func TestGenerateScript_ParsesReply(t *testing.T) {
	c, mt := newTestClient(t, "sk-test")
	captured := captureRequest(t, mt, `{
		"title": "From Waitress to $8,600/Month",
		"hook": "I lost my job.",
		"problem": "Bills piled up.",
		"solution": "Affiliate marketing.",
		"proof": "$8,600 last month.",
		"cta": "Comment START.",
		"full_script": "I lost my job. Bills piled up.",
		"hashtags": ["#sidehustle", "#passiveincome"],
		"estimated_engagement": 82
	}`)

	script, err := c.GenerateScript(context.Background(), domain.ScriptRequest{
		ContentType:    "Motivational",
		VideoLength:    "60 seconds",
		TargetAudience: "Aspiring Entrepreneurs",
		KeyMessage:     "You can start today",
		TemplateType:   "success-story",
	})
	require.NoError(t, err)

	assert.Equal(t, "From Waitress to $8,600/Month", script.Title)
	assert.Equal(t, "Comment START.", script.CTA)
	assert.Equal(t, []string{"#sidehustle", "#passiveincome"}, script.Hashtags)
	assert.Equal(t, 82, script.EstimatedEngagement)

	req := *captured
	assert.InDelta(t, 0.7, req["temperature"], 0.0001)
	user := req["messages"].([]any)[1].(map[string]any)
	assert.Contains(t, user["content"], "- Key Message: You can start today")
	assert.Contains(t, user["content"], "- Template Type: success-story")
}

func TestGenerateScript_Defaults(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		title      string
		engagement int
	}{
		{"everything missing", `{}`, "Untitled Script", 50},
		{"engagement above range", `{"title": "T", "estimated_engagement": 140}`, "T", 100},
		{"engagement below range", `{"estimated_engagement": -3}`, "Untitled Script", 0},
		{"explicit zero kept", `{"estimated_engagement": 0}`, "Untitled Script", 0},
		{"engagement beyond int range", `{"estimated_engagement": 1e20}`, "Untitled Script", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newTestClient(t, "sk-test")
			replyWith(t, mt, tt.reply)

			script, err := c.GenerateScript(context.Background(), domain.ScriptRequest{})
			require.NoError(t, err)
			assert.Equal(t, tt.title, script.Title)
			assert.Equal(t, tt.engagement, script.EstimatedEngagement)
			assert.NotNil(t, script.Hashtags)
		})
	}
}

func TestGenerateScript_Failure(t *testing.T) {
	c, mt := newTestClient(t, "sk-test")
	mt.RegisterResponder(http.MethodPost, testCompletionsURL,
		httpmock.NewErrorResponder(errors.New("connection reset")))

	script, err := c.GenerateScript(context.Background(), domain.ScriptRequest{})
	require.Error(t, err)
	assert.Nil(t, script)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.Contains(t, err.Error(), "failed to generate script: ")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestScoreAuthenticity(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  int
	}{
		{"plain number", "85", 85},
		{"surrounding whitespace", "  72\n", 72},
		{"trailing text", "64 - strong personal story", 64},
		{"decimal truncated", "77.9", 77},
		{"above range", "130", 100},
		{"negative", "-4", 0},
		{"not a number", "Score: 80", DefaultAuthenticityScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mt := newTestClient(t, "sk-test")
			captured := captureRequest(t, mt, tt.reply)

			assert.Equal(t, tt.want, c.ScoreAuthenticity(context.Background(), "I lost my job and found a way out"))
			_, hasFormat := (*captured)["response_format"]
			assert.False(t, hasFormat)
		})
	}
}

func TestScoreAuthenticity_NeverFails(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		c, mt := newTestClient(t, "")
		assert.Equal(t, DefaultAuthenticityScore, c.ScoreAuthenticity(context.Background(), "content"))
		assert.Zero(t, mt.GetTotalCallCount())
	})

	t.Run("upstream error", func(t *testing.T) {
		c, mt := newTestClient(t, "sk-test")
		mt.RegisterResponder(http.MethodPost, testCompletionsURL,
			httpmock.NewStringResponder(http.StatusUnauthorized, `{"error": {"message": "bad key"}}`))
		assert.Equal(t, DefaultAuthenticityScore, c.ScoreAuthenticity(context.Background(), "content"))
	})

	t.Run("empty reply", func(t *testing.T) {
		c, mt := newTestClient(t, "sk-test")
		replyWith(t, mt, "")
		assert.Equal(t, DefaultAuthenticityScore, c.ScoreAuthenticity(context.Background(), "content"))
	})
}

func TestParseScore_HugeValues(t *testing.T) {
	score, ok := parseScore("99999999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, 100, score)

	score, ok = parseScore("-99999999999999999999999")
	assert.True(t, ok)
	assert.Equal(t, 0, score)
}

func TestAnalysisInputFrom(t *testing.T) {
	captions := "caption"
	in := AnalysisInputFrom(&domain.ViralVideo{Title: "t", Captions: &captions, Views: 10, EngagementRate: 1.5})
	assert.Equal(t, AnalysisInput{Title: "t", Captions: "caption", Views: 10, EngagementRate: 1.5}, in)
}
