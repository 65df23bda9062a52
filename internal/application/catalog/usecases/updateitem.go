package usecases

import (
	"context"
	"errors"
	"fmt"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/db"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// UpdateItemUseCase replaces the mutable fields of an item. The result
// is tagged: not found, unchanged, or updated. An unchanged outcome
// produces no write and no audit record.
type UpdateItemUseCase struct {
	repo      catalog.Repository
	desc      catalog.Descriptor
	recorder  *appaudit.Recorder
	sanitizer *sanitize.Sanitizer
	txManager *db.TransactionManager
	logger    logger.Interface
}

// NewUpdateItemUseCase creates a new update item use case
func NewUpdateItemUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	sanitizer *sanitize.Sanitizer,
	txManager *db.TransactionManager,
	log logger.Interface,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		repo:      repo,
		desc:      desc,
		recorder:  recorder,
		sanitizer: sanitizer,
		txManager: txManager,
		logger:    log,
	}
}

// Execute executes the update item use case
func (uc *UpdateItemUseCase) Execute(ctx context.Context, id uint, request dto.UpdateItemRequest, actorID uint) (*dto.ItemResponse, catalog.UpdateOutcome, error) {
	if err := validateStrings(uc.sanitizer, map[string]*string{
		"code":        &request.Code,
		"name":        &request.Name,
		"description": &request.Description,
	}); err != nil {
		return nil, catalog.OutcomeNotFound, err
	}

	attrs := catalog.Attributes{
		Code:        &request.Code,
		Name:        &request.Name,
		Description: &request.Description,
		Active:      request.Active,
	}

	return uc.apply(ctx, id, attrs, audit.ActionUpdate, "updated", actorID)
}

func (uc *UpdateItemUseCase) apply(ctx context.Context, id uint, attrs catalog.Attributes, action audit.Action, verb string, actorID uint) (*dto.ItemResponse, catalog.UpdateOutcome, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, catalog.OutcomeNotFound, err
	}
	if item == nil {
		return nil, catalog.OutcomeNotFound, nil
	}

	changes := item.Apply(attrs)
	if len(changes) == 0 {
		return toItemResponse(item), catalog.OutcomeUnchanged, nil
	}

	changedFields := catalog.ChangedFields(changes)
	if err := checkUniqueness(ctx, uc.repo, uc.desc, item, changedFields, item.ID()); err != nil {
		if errors.Is(err, catalog.ErrDuplicateValue) {
			return nil, catalog.OutcomeNotFound, apperrors.NewConflictError(
				fmt.Sprintf("%s with this code already exists", uc.desc.Type), item.Code())
		}
		return nil, catalog.OutcomeNotFound, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Update(txCtx, item, changedFields); err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", uc.desc.Type))
			}
			if errors.Is(err, catalog.ErrDuplicateValue) {
				return apperrors.NewConflictError(
					fmt.Sprintf("%s with this code already exists", uc.desc.Type), item.Code())
			}
			return err
		}

		description := fmt.Sprintf("%s: %s", describeAction(verb, uc.desc, item),
			catalog.DescribeChanges(maskSensitiveChanges(changes)))
		itemID := item.ID()
		return uc.recorder.Record(txCtx, action, uc.desc.Type, &itemID, description, actorID)
	})
	if err != nil {
		return nil, catalog.OutcomeNotFound, err
	}

	uc.logger.Infow("item updated",
		"entity_type", uc.desc.Type,
		"id", item.ID(),
		"changed_fields", changedFields)

	return toItemResponse(item), catalog.OutcomeUpdated, nil
}
