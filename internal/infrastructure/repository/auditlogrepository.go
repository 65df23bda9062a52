package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vendra/internal/domain/audit"
	"vendra/internal/infrastructure/persistence/mappers"
	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/shared/db"
	"vendra/internal/shared/logger"
)

// AuditLogRepository implements the append-only audit trail.
type AuditLogRepository struct {
	db     *gorm.DB
	mapper mappers.AuditLogMapper
	logger logger.Interface
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(database *gorm.DB, log logger.Interface) audit.Repository {
	return &AuditLogRepository{
		db:     database,
		mapper: mappers.NewAuditLogMapper(),
		logger: log,
	}
}

// Append writes one audit record. It joins the ambient transaction
// when one is present so the record commits with the data change it
// describes.
func (r *AuditLogRepository) Append(ctx context.Context, record *audit.Record) error {
	model := r.mapper.ToModel(record)

	conn := db.GetTxFromContext(ctx, r.db)
	if err := conn.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to append audit record",
			"action", record.Action(),
			"entity_type", record.EntityType(),
			"error", err)
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

// List reads the trail newest first with the filtered total.
func (r *AuditLogRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Record, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AuditLogModel{})

	if filter.Action != nil {
		query = query.Where("action = ?", string(*filter.Action))
	}
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.ActorID != nil {
		query = query.Where("actor_id = ?", *filter.ActorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count audit records", "error", err)
		return nil, 0, fmt.Errorf("failed to count audit records: %w", err)
	}

	var rows []*models.AuditLogModel
	if err := query.
		Order("id DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list audit records", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit records: %w", err)
	}

	records, err := r.mapper.ToDomainList(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
