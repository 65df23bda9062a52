package catalog

import "errors"

var (
	// ErrItemNotFound indicates the catalog item was not found
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrDuplicateValue indicates a declared unique field collides with an existing row
	ErrDuplicateValue = errors.New("value already exists for a unique field")

	// ErrMissingCode indicates an import row without the natural key column
	ErrMissingCode = errors.New("row is missing the code column")
)
