package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type ScriptStore struct {
	db *sqlx.DB
}

func NewScriptStore(db *sqlx.DB) *ScriptStore {
	return &ScriptStore{db: db}
}

func (s *ScriptStore) List(ctx context.Context) ([]domain.Script, error) {
	return s.ListByStatus(ctx)
}

func (s *ScriptStore) ListByStatus(ctx context.Context, statuses ...string) ([]domain.Script, error) {
	where, args := statusFilter(statuses)

	scripts := []domain.Script{}
	err := selectAll(ctx, s.db, &scripts,
		"SELECT * FROM scripts"+where+" ORDER BY created_at DESC, id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("list scripts: %w", err)
	}
	return scripts, nil
}

func (s *ScriptStore) Get(ctx context.Context, id int64) (*domain.Script, error) {
	var script domain.Script
	if err := getOne(ctx, s.db, &script, "script", id,
		"SELECT * FROM scripts WHERE id = $1", id); err != nil {
		return nil, err
	}
	return &script, nil
}

func (s *ScriptStore) Create(ctx context.Context, script domain.Script) (*domain.Script, error) {
	script.SetDefaults()

	query := `
		INSERT INTO scripts (
			title, content, content_type, video_length, target_audience,
			template_type, ai_generated, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		RETURNING *`

	var created domain.Script
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &created, query,
		script.Title,
		script.Content,
		script.ContentType,
		script.VideoLength,
		script.TargetAudience,
		script.TemplateType,
		script.AIGenerated,
		script.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("insert script: %w", err)
	}
	return &created, nil
}

func (s *ScriptStore) Update(ctx context.Context, id int64, patch domain.ScriptPatch) (*domain.Script, error) {
	query := `
		UPDATE scripts SET
			title = COALESCE($2, title),
			content = COALESCE($3, content),
			content_type = COALESCE($4, content_type),
			video_length = COALESCE($5, video_length),
			target_audience = COALESCE($6, target_audience),
			template_type = COALESCE($7, template_type),
			ai_generated = COALESCE($8, ai_generated),
			status = COALESCE($9, status),
			updated_at = now()
		WHERE id = $1
		RETURNING *`

	var updated domain.Script
	err := getOne(ctx, s.db, &updated, "script", id, query,
		id,
		patch.Title,
		patch.Content,
		patch.ContentType,
		patch.VideoLength,
		patch.TargetAudience,
		patch.TemplateType,
		patch.AIGenerated,
		patch.Status,
	)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
