package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"vendra/internal/domain/role"
	"vendra/internal/infrastructure/persistence/models"
)

// RoleMapper provides methods for converting between domain and model
type RoleMapper interface {
	ToDomain(model *models.RoleModel) (*role.Role, error)
	ToModel(domain *role.Role) (*models.RoleModel, error)
	ToDomainList(modelList []*models.RoleModel) ([]*role.Role, error)
}

type RoleMapperImpl struct{}

// NewRoleMapper creates a new RoleMapper
func NewRoleMapper() RoleMapper {
	return &RoleMapperImpl{}
}

func (m *RoleMapperImpl) ToDomain(model *models.RoleModel) (*role.Role, error) {
	if model == nil {
		return nil, nil
	}

	var scopes []string
	if len(model.Scopes) > 0 {
		if err := json.Unmarshal(model.Scopes, &scopes); err != nil {
			return nil, fmt.Errorf("failed to decode scopes for role %d: %w", model.ID, err)
		}
	}

	r, err := role.ReconstructRole(
		model.ID,
		model.Code,
		model.Name,
		model.RoleType,
		scopes,
		model.IsAdmin,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct role %d: %w", model.ID, err)
	}
	return r, nil
}

func (m *RoleMapperImpl) ToModel(domain *role.Role) (*models.RoleModel, error) {
	if domain == nil {
		return nil, nil
	}

	scopes, err := json.Marshal(domain.Scopes())
	if err != nil {
		return nil, fmt.Errorf("failed to encode scopes for role %q: %w", domain.Code(), err)
	}

	return &models.RoleModel{
		ID:        domain.ID(),
		Code:      domain.Code(),
		Name:      domain.Name(),
		RoleType:  domain.RoleType(),
		Scopes:    datatypes.JSON(scopes),
		IsAdmin:   domain.IsAdmin(),
		Active:    domain.Active(),
		CreatedAt: domain.CreatedAt(),
		UpdatedAt: domain.UpdatedAt(),
	}, nil
}

func (m *RoleMapperImpl) ToDomainList(modelList []*models.RoleModel) ([]*role.Role, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*role.Role, 0, len(modelList))
	for _, model := range modelList {
		domain, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		if domain != nil {
			domains = append(domains, domain)
		}
	}
	return domains, nil
}
