package role

import "errors"

var (
	// ErrRoleNotFound indicates the role was not found
	ErrRoleNotFound = errors.New("role not found")

	// ErrRoleCodeExists indicates a role with the code already exists
	ErrRoleCodeExists = errors.New("role code already exists")
)
