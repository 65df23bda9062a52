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

// CreateItemUseCase creates one catalog item.
type CreateItemUseCase struct {
	repo      catalog.Repository
	desc      catalog.Descriptor
	recorder  *appaudit.Recorder
	sanitizer *sanitize.Sanitizer
	txManager *db.TransactionManager
	logger    logger.Interface
}

// NewCreateItemUseCase creates a new create item use case
func NewCreateItemUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	sanitizer *sanitize.Sanitizer,
	txManager *db.TransactionManager,
	log logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		repo:      repo,
		desc:      desc,
		recorder:  recorder,
		sanitizer: sanitizer,
		txManager: txManager,
		logger:    log,
	}
}

// Execute executes the create item use case
func (uc *CreateItemUseCase) Execute(ctx context.Context, request dto.CreateItemRequest, actorID uint) (*dto.ItemResponse, error) {
	if err := validateStrings(uc.sanitizer, map[string]*string{
		"code":        &request.Code,
		"name":        &request.Name,
		"description": &request.Description,
	}); err != nil {
		return nil, err
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	item, err := catalog.NewItem(uc.desc.Type, request.Code, request.Name, request.Description, active, actorID)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := checkUniqueness(ctx, uc.repo, uc.desc, item, uc.desc.UniqueFields, 0); err != nil {
		if errors.Is(err, catalog.ErrDuplicateValue) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("%s with this code already exists", uc.desc.Type), item.Code())
		}
		return nil, err
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Create(txCtx, item); err != nil {
			if errors.Is(err, catalog.ErrDuplicateValue) {
				return apperrors.NewConflictError(
					fmt.Sprintf("%s with this code already exists", uc.desc.Type), item.Code())
			}
			return err
		}

		id := item.ID()
		return uc.recorder.Record(txCtx, audit.ActionCreate, uc.desc.Type, &id,
			describeAction("created", uc.desc, item), actorID)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("item created",
		"entity_type", uc.desc.Type,
		"id", item.ID(),
		"code", item.Code())

	return toItemResponse(item), nil
}
