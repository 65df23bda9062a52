package usecases

import (
	"context"
	"fmt"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// GetItemUseCase retrieves one catalog item by ID.
type GetItemUseCase struct {
	repo     catalog.Repository
	desc     catalog.Descriptor
	recorder *appaudit.Recorder
	logger   logger.Interface
}

// NewGetItemUseCase creates a new get item use case
func NewGetItemUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	log logger.Interface,
) *GetItemUseCase {
	return &GetItemUseCase{
		repo:     repo,
		desc:     desc,
		recorder: recorder,
		logger:   log,
	}
}

// Execute executes the get item use case
func (uc *GetItemUseCase) Execute(ctx context.Context, id uint, actorID uint) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s not found", uc.desc.Type))
	}

	uc.recorder.RecordRead(ctx, audit.ActionGetID, uc.desc.Type, &id,
		describeAction("read", uc.desc, item), actorID)

	return toItemResponse(item), nil
}
