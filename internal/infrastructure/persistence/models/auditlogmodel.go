package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// AuditLogModel is append-only; rows are never updated or deleted.
type AuditLogModel struct {
	ID          uint   `gorm:"primarykey"`
	Action      string `gorm:"not null;size:20;index:idx_audit_action"`
	EntityType  string `gorm:"not null;size:50;index:idx_audit_entity"`
	EntityID    *uint  `gorm:"index:idx_audit_entity"`
	Description string `gorm:"type:text"`
	ActorID     uint   `gorm:"not null;index:idx_audit_actor"`
	CreatedAt   time.Time
}

func (AuditLogModel) TableName() string {
	return constants.TableAuditLogs
}
