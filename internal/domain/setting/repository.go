package setting

import "context"

// Repository persists system settings. Reads must hit the store every
// time; the audit-level gate depends on seeing the latest value.
type Repository interface {
	// GetByKey retrieves a setting. Returns ErrSettingNotFound when absent.
	GetByKey(ctx context.Context, key string) (*SystemSetting, error)

	// Upsert creates or updates a setting by key.
	Upsert(ctx context.Context, s *SystemSetting) error
}
