package service

import (
	"context"
	"log/slog"
	"time"

	"content_studio/internal/domain"
)

// events publishes record changes. Delivery is best-effort: the record is
// already written, so a failed publish is logged and dropped.
type events struct {
	publisher Publisher
	logger    *slog.Logger
}

func (e events) emit(ctx context.Context, resource, action string, id int64, record any) {
	if e.publisher == nil {
		return
	}

	event := domain.Event{
		Action:    action,
		Resource:  resource,
		RecordID:  id,
		Record:    record,
		Timestamp: time.Now().UTC(),
	}

	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("publish event failed",
			"event", event.RoutingSuffix(),
			"record_id", id,
			"error", err,
		)
	}
}
