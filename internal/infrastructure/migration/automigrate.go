package migration

import (
	"vendra/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.RoleModel{},
		&models.BrandModel{},
		&models.CategoryModel{},
		&models.AuditLogModel{},
		&models.SystemSettingModel{},
		&models.DocumentTypeModel{},
		&models.DocumentModel{},
	}
}
