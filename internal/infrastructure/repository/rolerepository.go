package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vendra/internal/domain/role"
	"vendra/internal/infrastructure/persistence/mappers"
	"vendra/internal/infrastructure/persistence/models"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// RoleRepository implements the role repository interface on GORM.
type RoleRepository struct {
	db     *gorm.DB
	mapper mappers.RoleMapper
	logger logger.Interface
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(database *gorm.DB, log logger.Interface) role.Repository {
	return &RoleRepository{
		db:     database,
		mapper: mappers.NewRoleMapper(),
		logger: log,
	}
}

// Create inserts a new role and assigns its ID.
func (r *RoleRepository) Create(ctx context.Context, roleEntity *role.Role) error {
	model, err := r.mapper.ToModel(roleEntity)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return role.ErrRoleCodeExists
		}
		r.logger.Errorw("failed to create role", "code", roleEntity.Code(), "error", err)
		return fmt.Errorf("failed to create role: %w", err)
	}

	roleEntity.SetID(model.ID)
	r.logger.Infow("role created", "id", model.ID, "code", model.Code)
	return nil
}

// GetByID retrieves a role by ID. Returns nil when absent.
func (r *RoleRepository) GetByID(ctx context.Context, id uint) (*role.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// GetByCode retrieves a role by code. Returns nil when absent.
func (r *RoleRepository) GetByCode(ctx context.Context, code string) (*role.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).Take(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get role by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// ListActive retrieves all active roles.
func (r *RoleRepository) ListActive(ctx context.Context) ([]*role.Role, error) {
	var rows []*models.RoleModel
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("id").Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list roles", "error", err)
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return r.mapper.ToDomainList(rows)
}
