package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// UserModel represents the database persistence model for principals.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID             uint   `gorm:"primarykey"`
	Email          string `gorm:"uniqueIndex;not null;size:254"`
	Name           string `gorm:"not null;size:100"`
	HashedPassword string `gorm:"not null;size:255"`
	Active         bool   `gorm:"not null;default:true;index"`
	Superuser      bool   `gorm:"not null;default:false"`
	RoleID         *uint  `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
