// Package setting provides runtime-mutable system settings.
package setting

import (
	"fmt"
	"strings"
	"time"
)

// SystemSetting is one runtime-configurable key/value pair. Values are
// stored as strings; callers interpret them.
type SystemSetting struct {
	id        uint
	key       string
	value     string
	updatedBy uint
	updatedAt time.Time
}

// NewSystemSetting creates a new setting.
func NewSystemSetting(key, value string, updatedBy uint) (*SystemSetting, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}

	return &SystemSetting{
		key:       key,
		value:     value,
		updatedBy: updatedBy,
		updatedAt: time.Now().UTC(),
	}, nil
}

// ReconstructSystemSetting reconstructs a setting from persistence.
func ReconstructSystemSetting(id uint, key, value string, updatedBy uint, updatedAt time.Time) (*SystemSetting, error) {
	if id == 0 {
		return nil, fmt.Errorf("setting ID cannot be zero")
	}
	if key == "" {
		return nil, fmt.Errorf("setting key is required")
	}

	return &SystemSetting{
		id:        id,
		key:       key,
		value:     value,
		updatedBy: updatedBy,
		updatedAt: updatedAt,
	}, nil
}

// ID returns the setting ID.
func (s *SystemSetting) ID() uint { return s.id }

// Key returns the setting key.
func (s *SystemSetting) Key() string { return s.key }

// Value returns the raw string value.
func (s *SystemSetting) Value() string { return s.value }

// UpdatedBy returns the last mutating principal.
func (s *SystemSetting) UpdatedBy() uint { return s.updatedBy }

// UpdatedAt returns the last mutation timestamp.
func (s *SystemSetting) UpdatedAt() time.Time { return s.updatedAt }

// SetID assigns the storage-generated ID after insert.
func (s *SystemSetting) SetID(id uint) {
	if s.id == 0 {
		s.id = id
	}
}
