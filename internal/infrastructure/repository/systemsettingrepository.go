package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vendra/internal/domain/setting"
	"vendra/internal/infrastructure/persistence/mappers"
	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/shared/logger"
)

// SystemSettingRepository implements setting.Repository on GORM.
type SystemSettingRepository struct {
	db     *gorm.DB
	mapper mappers.SystemSettingMapper
	logger logger.Interface
}

// NewSystemSettingRepository creates a new system setting repository
func NewSystemSettingRepository(database *gorm.DB, log logger.Interface) setting.Repository {
	return &SystemSettingRepository{
		db:     database,
		mapper: mappers.NewSystemSettingMapper(),
		logger: log,
	}
}

// GetByKey reads a setting straight from the store. No caching: the
// audit-level gate needs the latest persisted value on every call.
func (r *SystemSettingRepository) GetByKey(ctx context.Context, key string) (*setting.SystemSetting, error) {
	var model models.SystemSettingModel
	if err := r.db.WithContext(ctx).Where("setting_key = ?", key).Take(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, setting.ErrSettingNotFound
		}
		r.logger.Errorw("failed to get setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// Upsert creates or updates a setting by key.
func (r *SystemSettingRepository) Upsert(ctx context.Context, s *setting.SystemSetting) error {
	model := r.mapper.ToModel(s)

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	s.SetID(model.ID)
	return nil
}
