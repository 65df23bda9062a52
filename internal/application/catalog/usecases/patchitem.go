package usecases

import (
	"context"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/db"
	"vendra/internal/shared/logger"
)

// PatchItemUseCase updates only the fields present in the request.
// Shares the diff-and-write path with full updates; only the action
// class and the field selection differ.
type PatchItemUseCase struct {
	update *UpdateItemUseCase
}

// NewPatchItemUseCase creates a new patch item use case
func NewPatchItemUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	sanitizer *sanitize.Sanitizer,
	txManager *db.TransactionManager,
	log logger.Interface,
) *PatchItemUseCase {
	return &PatchItemUseCase{
		update: NewUpdateItemUseCase(repo, desc, recorder, sanitizer, txManager, log),
	}
}

// Execute executes the patch item use case
func (uc *PatchItemUseCase) Execute(ctx context.Context, id uint, request dto.PatchItemRequest, actorID uint) (*dto.ItemResponse, catalog.UpdateOutcome, error) {
	if err := validateStrings(uc.update.sanitizer, map[string]*string{
		"code":        request.Code,
		"name":        request.Name,
		"description": request.Description,
	}); err != nil {
		return nil, catalog.OutcomeNotFound, err
	}

	attrs := catalog.Attributes{
		Code:        request.Code,
		Name:        request.Name,
		Description: request.Description,
		Active:      request.Active,
	}

	return uc.update.apply(ctx, id, attrs, audit.ActionPatch, "patched", actorID)
}
