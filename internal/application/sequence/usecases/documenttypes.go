package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/sequence/dto"
	"vendra/internal/domain/sequence"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// CreateDocumentTypeUseCase registers a new document number series.
type CreateDocumentTypeUseCase struct {
	repo   sequence.Repository
	logger logger.Interface
}

// NewCreateDocumentTypeUseCase creates a new create document type use case
func NewCreateDocumentTypeUseCase(repo sequence.Repository, log logger.Interface) *CreateDocumentTypeUseCase {
	return &CreateDocumentTypeUseCase{
		repo:   repo,
		logger: log,
	}
}

// Execute executes the create document type use case
func (uc *CreateDocumentTypeUseCase) Execute(ctx context.Context, request dto.CreateDocumentTypeRequest) (*dto.DocumentTypeResponse, error) {
	dt, err := sequence.NewDocumentType(request.Code, request.Name, request.Prefix)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.CreateType(ctx, dt); err != nil {
		uc.logger.Errorw("failed to create document type", "code", request.Code, "error", err)
		return nil, fmt.Errorf("failed to create document type: %w", err)
	}

	uc.logger.Infow("document type created", "id", dt.ID(), "code", dt.Code())

	return toDocumentTypeResponse(dt), nil
}

// ListDocumentTypesUseCase lists every registered document series.
type ListDocumentTypesUseCase struct {
	repo   sequence.Repository
	logger logger.Interface
}

// NewListDocumentTypesUseCase creates a new list document types use case
func NewListDocumentTypesUseCase(repo sequence.Repository, log logger.Interface) *ListDocumentTypesUseCase {
	return &ListDocumentTypesUseCase{
		repo:   repo,
		logger: log,
	}
}

// Execute executes the list document types use case
func (uc *ListDocumentTypesUseCase) Execute(ctx context.Context) ([]dto.DocumentTypeResponse, error) {
	types, err := uc.repo.ListTypes(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list document types", "error", err)
		return nil, fmt.Errorf("failed to list document types: %w", err)
	}

	responses := make([]dto.DocumentTypeResponse, 0, len(types))
	for _, dt := range types {
		responses = append(responses, *toDocumentTypeResponse(dt))
	}
	return responses, nil
}

func toDocumentTypeResponse(dt *sequence.DocumentType) *dto.DocumentTypeResponse {
	return &dto.DocumentTypeResponse{
		ID:     dt.ID(),
		Code:   dt.Code(),
		Name:   dt.Name(),
		Prefix: dt.Prefix(),
		Active: dt.Active(),
	}
}
