package mappers

import (
	"fmt"

	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/persistence/models"
)

// UserMapper provides methods for converting between domain and model
type UserMapper interface {
	ToDomain(model *models.UserModel) (*user.User, error)
	ToModel(domain *user.User) *models.UserModel
	ToDomainList(modelList []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	u, err := user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.HashedPassword,
		model.Active,
		model.Superuser,
		model.RoleID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return u, nil
}

func (m *UserMapperImpl) ToModel(domain *user.User) *models.UserModel {
	if domain == nil {
		return nil
	}

	return &models.UserModel{
		ID:             domain.ID(),
		Email:          domain.Email(),
		Name:           domain.Name(),
		HashedPassword: domain.HashedPassword(),
		Active:         domain.Active(),
		Superuser:      domain.Superuser(),
		RoleID:         domain.RoleID(),
		CreatedAt:      domain.CreatedAt(),
		UpdatedAt:      domain.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToDomainList(modelList []*models.UserModel) ([]*user.User, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*user.User, 0, len(modelList))
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
