package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// CategoryModel persists category catalog items.
type CategoryModel struct {
	ID          uint   `gorm:"primarykey"`
	Code        string `gorm:"uniqueIndex;not null;size:10"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Active      bool   `gorm:"not null;default:true;index"`
	OwnerID     uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CategoryModel) TableName() string {
	return constants.TableCategories
}
