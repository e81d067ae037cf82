package memory

import (
	"context"

	"content_studio/internal/domain"
)

type ScriptStore struct {
	s *Store
}

func (ss *ScriptStore) List(ctx context.Context) ([]domain.Script, error) {
	return ss.ListByStatus(ctx)
}

func (ss *ScriptStore) ListByStatus(_ context.Context, statuses ...string) ([]domain.Script, error) {
	match := statusIn(statuses)
	return ss.s.scripts.selectSorted(
		func(s domain.Script) bool { return match(s.Status) },
		func(a, b domain.Script) bool { return newestFirst(a.CreatedAt, b.CreatedAt, a.ID, b.ID) },
	), nil
}

func (ss *ScriptStore) Get(_ context.Context, id int64) (*domain.Script, error) {
	script, ok := ss.s.scripts.get(id)
	if !ok {
		return nil, notFound("script", id)
	}
	return &script, nil
}

func (ss *ScriptStore) Create(_ context.Context, script domain.Script) (*domain.Script, error) {
	script.SetDefaults()
	now := ss.s.timestamp()
	created := ss.s.scripts.insert(func(id int64) domain.Script {
		script.ID = id
		script.CreatedAt = now
		script.UpdatedAt = now
		return script
	})
	return &created, nil
}

func (ss *ScriptStore) Update(_ context.Context, id int64, patch domain.ScriptPatch) (*domain.Script, error) {
	now := ss.s.timestamp()
	updated, ok := ss.s.scripts.update(id, func(s *domain.Script) {
		patch.Apply(s)
		s.UpdatedAt = now
	})
	if !ok {
		return nil, notFound("script", id)
	}
	return &updated, nil
}
