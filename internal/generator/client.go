// Package generator produces marketing content through an OpenAI-compatible
// chat completion API.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

type Client struct {
	api    openai.Client
	model  string
	hasKey bool
	logger *slog.Logger
}

// New builds a client. A missing API key is not an error here; calls fail
// with ErrMissingAPIKey instead so the service can start without one.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &Client{
		api:    openai.NewClient(opts...),
		model:  cfg.Model,
		hasKey: cfg.APIKey != "",
		logger: logger.With("component", "generator"),
	}
}

// generateSchema reflects the reply struct into the schema sent with JSON
// requests.
func generateSchema[T any]() any {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

type jsonFormat struct {
	name        string
	description string
	schema      any
}

// complete sends one system and one user message and returns the first
// choice's text. A non-nil format requests a JSON reply.
func (c *Client) complete(ctx context.Context, system, prompt string, temperature float64, format *jsonFormat) (string, error) {
	if !c.hasKey {
		return "", ErrMissingAPIKey
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
	}
	if format != nil {
		// Non-strict so absent fields reach the defaulting code rather than
		// being rejected upstream.
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        format.name,
					Description: openai.String(format.description),
					Schema:      format.schema,
					Strict:      openai.Bool(false),
				},
			},
		}
	}

	start := time.Now()
	completion, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyReply
	}

	c.logger.Debug("completion received",
		"model", completion.Model,
		"finish_reason", completion.Choices[0].FinishReason,
		"duration", time.Since(start),
	)

	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyReply
	}
	return content, nil
}

// completeJSON is complete with the reply decoded into T.
func completeJSON[T any](ctx context.Context, c *Client, system, prompt string, temperature float64, format jsonFormat) (*T, error) {
	raw, err := c.complete(ctx, system, prompt, temperature, &format)
	if err != nil {
		return nil, err
	}

	var reply T
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("parse model reply: %w", err)
	}
	return &reply, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// clampPercent rounds v into 0..100 before converting, so values outside the
// int range still saturate.
func clampPercent(v float64) int {
	return int(math.Max(0, math.Min(100, math.Round(v))))
}
