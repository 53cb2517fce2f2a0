package models

import "time"

// AuditEvent is the gateway-owned activity trail record. Published to the
// audit queue on every successful mutation and drained into mongodb by
// cmd/worker.
type AuditEvent struct {
	ID         string    `json:"id" bson:"_id"`
	ActorID    string    `json:"actor_id" bson:"actor_id"`
	ActorName  string    `json:"actor_name" bson:"actor_name"`
	ActorRole  string    `json:"actor_role" bson:"actor_role"`
	Action     string    `json:"action" bson:"action"`
	Entity     string    `json:"entity" bson:"entity"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Detail     string    `json:"detail,omitempty" bson:"detail,omitempty"`
	RequestID  string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at" bson:"recorded_at"`
}
