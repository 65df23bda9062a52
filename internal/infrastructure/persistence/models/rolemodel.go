package models

import (
	"time"

	"gorm.io/datatypes"

	"vendra/internal/shared/constants"
)

// RoleModel persists roles. Scopes are stored as a JSON array of
// "resource:action" strings and mirrored into casbin on startup.
type RoleModel struct {
	ID        uint           `gorm:"primarykey"`
	Code      string         `gorm:"uniqueIndex;not null;size:50"`
	Name      string         `gorm:"not null;size:100"`
	RoleType  string         `gorm:"not null;size:50;column:role_type"`
	Scopes    datatypes.JSON `gorm:"type:json"`
	IsAdmin   bool           `gorm:"not null;default:false"`
	Active    bool           `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}
