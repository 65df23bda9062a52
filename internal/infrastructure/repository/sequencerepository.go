package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vendra/internal/domain/sequence"
	"vendra/internal/infrastructure/persistence/mappers"
	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/shared/logger"
)

// SequenceRepository implements sequence.Repository on GORM.
type SequenceRepository struct {
	db     *gorm.DB
	mapper mappers.DocumentTypeMapper
	logger logger.Interface
}

// NewSequenceRepository creates a new sequence repository
func NewSequenceRepository(database *gorm.DB, log logger.Interface) sequence.Repository {
	return &SequenceRepository{
		db:     database,
		mapper: mappers.NewDocumentTypeMapper(),
		logger: log,
	}
}

// GetTypeByID retrieves a document type. Returns nil when absent.
func (r *SequenceRepository) GetTypeByID(ctx context.Context, id uint) (*sequence.DocumentType, error) {
	var model models.DocumentTypeModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get document type", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get document type: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// ListTypes retrieves all document types.
func (r *SequenceRepository) ListTypes(ctx context.Context) ([]*sequence.DocumentType, error) {
	var rows []*models.DocumentTypeModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list document types", "error", err)
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}

// CreateType inserts a new document type and assigns its ID.
func (r *SequenceRepository) CreateType(ctx context.Context, dt *sequence.DocumentType) error {
	model := r.mapper.ToModel(dt)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create document type", "code", dt.Code(), "error", err)
		return fmt.Errorf("failed to create document type: %w", err)
	}
	dt.SetID(model.ID)
	return nil
}

// NextNumber allocates the next document number for a type within the
// calendar year of asOf. The document type row is locked FOR UPDATE for
// the duration of the transaction, so concurrent allocations for the
// same type serialize and never observe the same max sequence. Types
// lock independent rows and proceed in parallel.
func (r *SequenceRepository) NextNumber(ctx context.Context, documentTypeID uint, asOf time.Time) (*sequence.Allocation, error) {
	var allocation *sequence.Allocation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var typeRow models.DocumentTypeModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", documentTypeID).
			Take(&typeRow).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return sequence.ErrDocumentTypeNotFound
			}
			return fmt.Errorf("failed to lock document type: %w", err)
		}

		if !typeRow.Active {
			return sequence.ErrDocumentTypeInactive
		}

		year := sequence.YearOf(asOf)

		var maxSeq int64
		if err := tx.Model(&models.DocumentModel{}).
			Where("document_type_id = ? AND year = ?", documentTypeID, year).
			Select("COALESCE(MAX(sequence_number), 0)").
			Scan(&maxSeq).Error; err != nil {
			return fmt.Errorf("failed to read max sequence: %w", err)
		}

		next := int(maxSeq) + 1
		number := sequence.FormatNumber(typeRow.Prefix, year, next)

		doc := models.DocumentModel{
			DocumentTypeID: documentTypeID,
			Year:           year,
			SequenceNumber: int64(next),
			Number:         number,
			IssuedAt:       asOf,
		}
		if err := tx.Create(&doc).Error; err != nil {
			return fmt.Errorf("failed to record document number: %w", err)
		}

		allocation = &sequence.Allocation{
			Number:   number,
			Sequence: next,
			Year:     year,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Infow("document number allocated",
		"document_type_id", documentTypeID,
		"number", allocation.Number)

	return allocation, nil
}
