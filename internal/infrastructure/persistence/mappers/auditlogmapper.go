package mappers

import (
	"fmt"

	"vendra/internal/domain/audit"
	"vendra/internal/infrastructure/persistence/models"
)

// AuditLogMapper provides methods for converting between domain and model
type AuditLogMapper interface {
	ToDomain(model *models.AuditLogModel) (*audit.Record, error)
	ToModel(domain *audit.Record) *models.AuditLogModel
	ToDomainList(modelList []*models.AuditLogModel) ([]*audit.Record, error)
}

type AuditLogMapperImpl struct{}

// NewAuditLogMapper creates a new AuditLogMapper
func NewAuditLogMapper() AuditLogMapper {
	return &AuditLogMapperImpl{}
}

func (m *AuditLogMapperImpl) ToDomain(model *models.AuditLogModel) (*audit.Record, error) {
	if model == nil {
		return nil, nil
	}

	r, err := audit.ReconstructRecord(
		model.ID,
		audit.Action(model.Action),
		model.EntityType,
		model.EntityID,
		model.Description,
		model.ActorID,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct audit record %d: %w", model.ID, err)
	}
	return r, nil
}

func (m *AuditLogMapperImpl) ToModel(domain *audit.Record) *models.AuditLogModel {
	if domain == nil {
		return nil
	}

	return &models.AuditLogModel{
		ID:          domain.ID(),
		Action:      string(domain.Action()),
		EntityType:  domain.EntityType(),
		EntityID:    domain.EntityID(),
		Description: domain.Description(),
		ActorID:     domain.ActorID(),
		CreatedAt:   domain.CreatedAt(),
	}
}

func (m *AuditLogMapperImpl) ToDomainList(modelList []*models.AuditLogModel) ([]*audit.Record, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*audit.Record, 0, len(modelList))
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
