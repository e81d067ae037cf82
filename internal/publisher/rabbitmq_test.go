package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_studio/internal/domain"
)

func TestRoutingKey(t *testing.T) {
	event := domain.Event{Resource: domain.ResourceScheduledPost, Action: domain.ActionCreated}
	assert.Equal(t, "content.scheduled_post.created", RoutingKey("content", event))
}

func TestEncode(t *testing.T) {
	ts := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	body, err := encode(domain.Event{
		Action:    domain.ActionGenerated,
		Resource:  domain.ResourceScript,
		RecordID:  12,
		Record:    domain.Script{ID: 12, Title: "Start Today"},
		Timestamp: ts,
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "generated", decoded["action"])
	assert.Equal(t, "script", decoded["resource"])
	assert.EqualValues(t, 12, decoded["record_id"])
	assert.Equal(t, "2026-05-01T08:00:00Z", decoded["timestamp"])
	assert.Equal(t, "Start Today", decoded["record"].(map[string]any)["title"])
}

func TestEncode_StampsMissingTimestamp(t *testing.T) {
	body, err := encode(domain.Event{Action: domain.ActionUpdated, Resource: domain.ResourceScheduledPost})
	require.NoError(t, err)

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.WithinDuration(t, time.Now(), decoded.Timestamp, time.Minute)
}
