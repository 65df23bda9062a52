package setting

import "errors"

var (
	// ErrSettingNotFound indicates the setting was not found
	ErrSettingNotFound = errors.New("setting not found")
)
