package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/audit/dto"
	domainAudit "vendra/internal/domain/audit"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// ListAuditLogsUseCase reads the audit trail newest first.
type ListAuditLogsUseCase struct {
	auditRepo domainAudit.Repository
	logger    logger.Interface
}

// NewListAuditLogsUseCase creates a new list audit logs use case
func NewListAuditLogsUseCase(auditRepo domainAudit.Repository, log logger.Interface) *ListAuditLogsUseCase {
	return &ListAuditLogsUseCase{
		auditRepo: auditRepo,
		logger:    log,
	}
}

// Execute executes the list audit logs use case
func (uc *ListAuditLogsUseCase) Execute(ctx context.Context, request dto.ListAuditLogsRequest) ([]dto.AuditLogResponse, int64, error) {
	filter := domainAudit.ListFilter{
		Skip:  request.Skip,
		Limit: request.Limit,
	}

	if request.Action != "" {
		action := domainAudit.Action(request.Action)
		if !action.IsValid() {
			return nil, 0, errors.NewValidationError("unknown audit action", request.Action)
		}
		filter.Action = &action
	}
	if request.EntityType != "" {
		filter.EntityType = &request.EntityType
	}
	if request.ActorID != 0 {
		filter.ActorID = &request.ActorID
	}

	records, total, err := uc.auditRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list audit records", "error", err)
		return nil, 0, fmt.Errorf("failed to list audit records: %w", err)
	}

	responses := make([]dto.AuditLogResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, dto.AuditLogResponse{
			ID:          r.ID(),
			Action:      string(r.Action()),
			EntityType:  r.EntityType(),
			EntityID:    r.EntityID(),
			Description: r.Description(),
			ActorID:     r.ActorID(),
			CreatedAt:   r.CreatedAt(),
		})
	}

	return responses, total, nil
}
