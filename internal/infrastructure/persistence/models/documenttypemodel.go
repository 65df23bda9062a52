package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// DocumentTypeModel persists numbered document series definitions.
type DocumentTypeModel struct {
	ID        uint   `gorm:"primarykey"`
	Code      string `gorm:"uniqueIndex;not null;size:20"`
	Name      string `gorm:"not null;size:100"`
	Prefix    string `gorm:"size:10"`
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DocumentTypeModel) TableName() string {
	return constants.TableDocumentTypes
}
