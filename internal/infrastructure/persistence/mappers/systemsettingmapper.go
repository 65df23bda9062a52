package mappers

import (
	"fmt"

	"vendra/internal/domain/setting"
	"vendra/internal/infrastructure/persistence/models"
)

// SystemSettingMapper provides methods for converting between domain and model
type SystemSettingMapper interface {
	ToDomain(model *models.SystemSettingModel) (*setting.SystemSetting, error)
	ToModel(domain *setting.SystemSetting) *models.SystemSettingModel
}

type SystemSettingMapperImpl struct{}

// NewSystemSettingMapper creates a new SystemSettingMapper
func NewSystemSettingMapper() SystemSettingMapper {
	return &SystemSettingMapperImpl{}
}

func (m *SystemSettingMapperImpl) ToDomain(model *models.SystemSettingModel) (*setting.SystemSetting, error) {
	if model == nil {
		return nil, nil
	}

	s, err := setting.ReconstructSystemSetting(
		model.ID,
		model.SettingKey,
		model.Value,
		model.UpdatedBy,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct setting %d: %w", model.ID, err)
	}
	return s, nil
}

func (m *SystemSettingMapperImpl) ToModel(domain *setting.SystemSetting) *models.SystemSettingModel {
	if domain == nil {
		return nil
	}

	return &models.SystemSettingModel{
		ID:         domain.ID(),
		SettingKey: domain.Key(),
		Value:      domain.Value(),
		UpdatedBy:  domain.UpdatedBy(),
		UpdatedAt:  domain.UpdatedAt(),
	}
}
