package dto

import "time"

// ListAuditLogsRequest filters the audit trail.
type ListAuditLogsRequest struct {
	Action     string `form:"action"`
	EntityType string `form:"entity_type"`
	ActorID    uint   `form:"actor_id"`
	Skip       int    `form:"skip"`
	Limit      int    `form:"limit"`
}

// AuditLogResponse is one audit trail entry.
type AuditLogResponse struct {
	ID          uint      `json:"id"`
	Action      string    `json:"action"`
	EntityType  string    `json:"entity_type"`
	EntityID    *uint     `json:"entity_id,omitempty"`
	Description string    `json:"description"`
	ActorID     uint      `json:"actor_id"`
	CreatedAt   time.Time `json:"created_at"`
}
