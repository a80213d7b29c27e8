package dto

import "time"

// AuditEventMessage is the wire envelope for audit events on the
// in-process bus.
type AuditEventMessage struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}
