package usecases

import (
	"context"
	"errors"
	"fmt"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/shared/db"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// DeleteItemUseCase hard deletes a catalog item.
type DeleteItemUseCase struct {
	repo      catalog.Repository
	desc      catalog.Descriptor
	recorder  *appaudit.Recorder
	txManager *db.TransactionManager
	logger    logger.Interface
}

// NewDeleteItemUseCase creates a new delete item use case
func NewDeleteItemUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	txManager *db.TransactionManager,
	log logger.Interface,
) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		repo:      repo,
		desc:      desc,
		recorder:  recorder,
		txManager: txManager,
		logger:    log,
	}
}

// Execute executes the delete item use case
func (uc *DeleteItemUseCase) Execute(ctx context.Context, id uint, actorID uint) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", uc.desc.Type))
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.repo.Delete(txCtx, id); err != nil {
			if errors.Is(err, catalog.ErrItemNotFound) {
				return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", uc.desc.Type))
			}
			return err
		}

		return uc.recorder.Record(txCtx, audit.ActionDelete, uc.desc.Type, &id,
			describeAction("deleted", uc.desc, item), actorID)
	})
	if err != nil {
		return err
	}

	uc.logger.Infow("item deleted",
		"entity_type", uc.desc.Type,
		"id", id,
		"code", item.Code())

	return nil
}
