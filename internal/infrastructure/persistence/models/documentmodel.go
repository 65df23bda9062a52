package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// DocumentModel records every allocated document number. The composite
// unique index guarantees no duplicate sequence within a type and year
// even under concurrent allocation.
type DocumentModel struct {
	ID             uint   `gorm:"primarykey"`
	DocumentTypeID uint   `gorm:"not null;uniqueIndex:idx_doc_type_year_seq;index"`
	Year           int    `gorm:"not null;uniqueIndex:idx_doc_type_year_seq"`
	SequenceNumber int64  `gorm:"not null;uniqueIndex:idx_doc_type_year_seq;column:sequence_number"`
	Number         string `gorm:"not null;size:30;uniqueIndex"`
	IssuedAt       time.Time
	CreatedAt      time.Time
}

func (DocumentModel) TableName() string {
	return constants.TableDocuments
}
