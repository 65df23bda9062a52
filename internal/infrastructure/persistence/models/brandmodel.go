package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// BrandModel persists brand catalog items.
type BrandModel struct {
	ID          uint   `gorm:"primarykey"`
	Code        string `gorm:"uniqueIndex;not null;size:10"`
	Name        string `gorm:"not null;size:100"`
	Description string `gorm:"size:500"`
	Active      bool   `gorm:"not null;default:true;index"`
	OwnerID     uint   `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (BrandModel) TableName() string {
	return constants.TableBrands
}
