package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/sequence/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/sequence"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// AllocateNumberUseCase issues the next document number for a type.
type AllocateNumberUseCase struct {
	repo     sequence.Repository
	recorder *appaudit.Recorder
	logger   logger.Interface
}

// NewAllocateNumberUseCase creates a new allocate number use case
func NewAllocateNumberUseCase(
	repo sequence.Repository,
	recorder *appaudit.Recorder,
	log logger.Interface,
) *AllocateNumberUseCase {
	return &AllocateNumberUseCase{
		repo:     repo,
		recorder: recorder,
		logger:   log,
	}
}

// Execute executes the allocate number use case
func (uc *AllocateNumberUseCase) Execute(ctx context.Context, documentTypeID uint, actorID uint) (*dto.AllocationResponse, error) {
	allocation, err := uc.repo.NextNumber(ctx, documentTypeID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, sequence.ErrDocumentTypeNotFound):
			return nil, apperrors.NewNotFoundError("document type not found")
		case errors.Is(err, sequence.ErrDocumentTypeInactive):
			return nil, apperrors.NewValidationError("document type is inactive")
		}
		uc.logger.Errorw("failed to allocate document number",
			"document_type_id", documentTypeID, "error", err)
		return nil, fmt.Errorf("failed to allocate document number: %w", err)
	}

	if err := uc.recorder.Record(ctx, audit.ActionCreate, "document", nil,
		fmt.Sprintf("allocated document number %s", allocation.Number), actorID); err != nil {
		uc.logger.Warnw("failed to record allocation audit", "error", err)
	}

	return &dto.AllocationResponse{
		Number:   allocation.Number,
		Sequence: allocation.Sequence,
		Year:     allocation.Year,
	}, nil
}
