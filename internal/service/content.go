package service

import (
	"context"
	"fmt"
	"log/slog"

	"content_studio/internal/domain"
	"content_studio/internal/generator"
)

// ContentService runs the generation-backed operations.
type ContentService struct {
	viralVideos ViralVideoStore
	scripts     ScriptStore
	generator   Generator
	events      events
	logger      *slog.Logger
}

func NewContentService(
	viralVideos ViralVideoStore,
	scripts ScriptStore,
	gen Generator,
	publisher Publisher,
	logger *slog.Logger,
) *ContentService {
	logger = logger.With("component", "content_service")
	return &ContentService{
		viralVideos: viralVideos,
		scripts:     scripts,
		generator:   gen,
		events:      events{publisher: publisher, logger: logger},
		logger:      logger,
	}
}

// AnalyzeViralVideo scores a stored video and marks it processed. A missing
// video is reported before the generator is called.
func (s *ContentService) AnalyzeViralVideo(ctx context.Context, id int64) (*domain.AnalysisResult, error) {
	video, err := s.viralVideos.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get viral video: %w", err)
	}

	analysis, err := s.generator.AnalyzeViralVideo(ctx, generator.AnalysisInputFrom(video))
	if err != nil {
		return nil, fmt.Errorf("analyze viral video %d: %w", id, err)
	}

	status := domain.ViralVideoProcessed
	updated, err := s.viralVideos.Update(ctx, id, domain.ViralVideoPatch{
		AIScore: &analysis.Score,
		Status:  &status,
	})
	if err != nil {
		return nil, fmt.Errorf("store analysis for viral video %d: %w", id, err)
	}

	s.logger.Info("viral video analyzed", "id", id, "score", analysis.Score)
	s.events.emit(ctx, domain.ResourceViralVideo, domain.ActionAnalyzed, id, updated)

	return &domain.AnalysisResult{Analysis: analysis, Video: updated}, nil
}

// GenerateScript generates a script and stores it as an AI-generated draft.
func (s *ContentService) GenerateScript(ctx context.Context, req domain.ScriptRequest) (*domain.ScriptGeneration, error) {
	if !req.Complete() {
		return nil, fmt.Errorf("%w: content_type, video_length, target_audience, key_message and template_type are required", domain.ErrValidation)
	}

	generated, err := s.generator.GenerateScript(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate script: %w", err)
	}

	script, err := s.scripts.Create(ctx, domain.Script{
		Title:          generated.Title,
		Content:        generated.FullScript,
		ContentType:    req.ContentType,
		VideoLength:    req.VideoLength,
		TargetAudience: req.TargetAudience,
		TemplateType:   req.TemplateType,
		AIGenerated:    true,
		Status:         domain.ScriptDraft,
	})
	if err != nil {
		return nil, fmt.Errorf("store generated script: %w", err)
	}

	s.logger.Info("script generated", "id", script.ID, "estimated_engagement", generated.EstimatedEngagement)
	s.events.emit(ctx, domain.ResourceScript, domain.ActionGenerated, script.ID, script)

	return &domain.ScriptGeneration{Script: script, Generated: generated}, nil
}

// ScoreContent rates content authenticity. Only empty content fails.
func (s *ContentService) ScoreContent(ctx context.Context, content string) (int, error) {
	if content == "" {
		return 0, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	return s.generator.ScoreAuthenticity(ctx, content), nil
}
