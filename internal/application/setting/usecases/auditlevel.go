package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	domainSetting "vendra/internal/domain/setting"
	"vendra/internal/shared/constants"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// GetAuditLevelUseCase reads the current audit level setting.
type GetAuditLevelUseCase struct {
	settings domainSetting.Repository
	logger   logger.Interface
}

// NewGetAuditLevelUseCase creates a new get audit level use case
func NewGetAuditLevelUseCase(settings domainSetting.Repository, log logger.Interface) *GetAuditLevelUseCase {
	return &GetAuditLevelUseCase{
		settings: settings,
		logger:   log,
	}
}

// Execute executes the get audit level use case
func (uc *GetAuditLevelUseCase) Execute(ctx context.Context) (int, error) {
	s, err := uc.settings.GetByKey(ctx, constants.SettingAuditLevel)
	if err != nil {
		if errors.Is(err, domainSetting.ErrSettingNotFound) {
			return constants.AuditLevelMutations, nil
		}
		return 0, fmt.Errorf("failed to read audit level: %w", err)
	}

	level, err := strconv.Atoi(s.Value())
	if err != nil {
		return constants.AuditLevelMutations, nil
	}
	return level, nil
}

// UpdateAuditLevelUseCase changes the audit level at runtime. The new
// value is picked up by the next request; no restart involved.
type UpdateAuditLevelUseCase struct {
	settings domainSetting.Repository
	logger   logger.Interface
}

// NewUpdateAuditLevelUseCase creates a new update audit level use case
func NewUpdateAuditLevelUseCase(settings domainSetting.Repository, log logger.Interface) *UpdateAuditLevelUseCase {
	return &UpdateAuditLevelUseCase{
		settings: settings,
		logger:   log,
	}
}

// Execute executes the update audit level use case
func (uc *UpdateAuditLevelUseCase) Execute(ctx context.Context, level int, actorID uint) error {
	if level < 0 || level > constants.AuditLevelReads {
		return apperrors.NewValidationError(
			fmt.Sprintf("audit level must be between 0 and %d", constants.AuditLevelReads))
	}

	s, err := domainSetting.NewSystemSetting(constants.SettingAuditLevel, strconv.Itoa(level), actorID)
	if err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	if err := uc.settings.Upsert(ctx, s); err != nil {
		uc.logger.Errorw("failed to update audit level", "level", level, "error", err)
		return fmt.Errorf("failed to update audit level: %w", err)
	}

	uc.logger.Infow("audit level updated", "level", level, "updated_by", actorID)
	return nil
}
