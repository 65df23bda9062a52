package usecases

import (
	"context"
	"fmt"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// ListItemsUseCase retrieves a filtered, paginated item listing.
type ListItemsUseCase struct {
	repo      catalog.Repository
	desc      catalog.Descriptor
	recorder  *appaudit.Recorder
	sanitizer *sanitize.Sanitizer
	logger    logger.Interface
}

// NewListItemsUseCase creates a new list items use case
func NewListItemsUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	sanitizer *sanitize.Sanitizer,
	log logger.Interface,
) *ListItemsUseCase {
	return &ListItemsUseCase{
		repo:      repo,
		desc:      desc,
		recorder:  recorder,
		sanitizer: sanitizer,
		logger:    log,
	}
}

// Execute executes the list items use case
func (uc *ListItemsUseCase) Execute(ctx context.Context, request dto.ListItemsRequest, actorID uint) ([]dto.ItemResponse, int64, error) {
	window := utils.ValidatePageWindow(request.Skip, request.Limit)

	if request.Search != "" {
		if err := uc.sanitizer.Validate("search", request.Search); err != nil {
			return nil, 0, err
		}
	}

	items, total, err := uc.repo.List(ctx, catalog.ListFilter{
		Search: request.Search,
		Active: request.Active,
		Skip:   window.Skip,
		Limit:  window.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, *toItemResponse(item))
	}

	uc.recorder.RecordRead(ctx, audit.ActionGetAll, uc.desc.Type, nil,
		fmt.Sprintf("listed %d of %d %s items", len(responses), total, uc.desc.Type), actorID)

	return responses, total, nil
}
