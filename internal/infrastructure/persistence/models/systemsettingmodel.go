package models

import (
	"time"

	"vendra/internal/shared/constants"
)

// SystemSettingModel is the GORM model for runtime settings.
type SystemSettingModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	SettingKey string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value      string    `gorm:"column:value;type:text"`
	UpdatedBy  uint      `gorm:"column:updated_by"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (SystemSettingModel) TableName() string {
	return constants.TableSystemSettings
}
