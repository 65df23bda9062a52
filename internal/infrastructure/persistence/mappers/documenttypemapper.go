package mappers

import (
	"fmt"

	"vendra/internal/domain/sequence"
	"vendra/internal/infrastructure/persistence/models"
)

// DocumentTypeMapper provides methods for converting between domain and model
type DocumentTypeMapper interface {
	ToDomain(model *models.DocumentTypeModel) (*sequence.DocumentType, error)
	ToModel(domain *sequence.DocumentType) *models.DocumentTypeModel
	ToDomainList(modelList []*models.DocumentTypeModel) ([]*sequence.DocumentType, error)
}

type DocumentTypeMapperImpl struct{}

// NewDocumentTypeMapper creates a new DocumentTypeMapper
func NewDocumentTypeMapper() DocumentTypeMapper {
	return &DocumentTypeMapperImpl{}
}

func (m *DocumentTypeMapperImpl) ToDomain(model *models.DocumentTypeModel) (*sequence.DocumentType, error) {
	if model == nil {
		return nil, nil
	}

	dt, err := sequence.ReconstructDocumentType(
		model.ID,
		model.Code,
		model.Name,
		model.Prefix,
		model.Active,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document type %d: %w", model.ID, err)
	}
	return dt, nil
}

func (m *DocumentTypeMapperImpl) ToModel(domain *sequence.DocumentType) *models.DocumentTypeModel {
	if domain == nil {
		return nil
	}

	return &models.DocumentTypeModel{
		ID:     domain.ID(),
		Code:   domain.Code(),
		Name:   domain.Name(),
		Prefix: domain.Prefix(),
		Active: domain.Active(),
	}
}

func (m *DocumentTypeMapperImpl) ToDomainList(modelList []*models.DocumentTypeModel) ([]*sequence.DocumentType, error) {
	if modelList == nil {
		return nil, nil
	}

	domains := make([]*sequence.DocumentType, 0, len(modelList))
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
