package domain

import "time"

const (
	ResourceViralVideo    = "viral_video"
	ResourceScript        = "script"
	ResourceScheduledPost = "scheduled_post"
)

const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionAnalyzed  = "analyzed"
	ActionGenerated = "generated"
)

// Event announces a change to a record for downstream consumers.
type Event struct {
	Action    string    `json:"action"`
	Resource  string    `json:"resource"`
	RecordID  int64     `json:"record_id"`
	Record    any       `json:"record"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingSuffix is "<resource>.<action>".
func (e Event) RoutingSuffix() string {
	return e.Resource + "." + e.Action
}
