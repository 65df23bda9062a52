package audit

import (
	"context"
	"errors"
	"strconv"

	"vendra/internal/domain/audit"
	"vendra/internal/domain/setting"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
)

// SettingLevelResolver resolves the audit level from the system
// settings store on every call. Changing the setting takes effect on
// the next request without a restart, so no caching is allowed here.
type SettingLevelResolver struct {
	settings setting.Repository
	logger   logger.Interface
}

var _ audit.LevelResolver = (*SettingLevelResolver)(nil)

// NewSettingLevelResolver creates a resolver backed by system settings.
func NewSettingLevelResolver(settings setting.Repository, log logger.Interface) *SettingLevelResolver {
	return &SettingLevelResolver{
		settings: settings,
		logger:   log,
	}
}

// Resolve returns the current audit level. A missing or malformed
// setting falls back to level 1: mutations stay audited even when the
// configuration is broken.
func (r *SettingLevelResolver) Resolve(ctx context.Context) int {
	s, err := r.settings.GetByKey(ctx, constants.SettingAuditLevel)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			r.logger.Warnw("failed to read audit level setting", "error", err)
		}
		return constants.AuditLevelMutations
	}

	level, err := strconv.Atoi(s.Value())
	if err != nil {
		r.logger.Warnw("audit level setting is not numeric", "value", s.Value())
		return constants.AuditLevelMutations
	}

	return level
}
