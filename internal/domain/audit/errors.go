package audit

import "errors"

var (
	// ErrRecordNotFound indicates the audit record was not found
	ErrRecordNotFound = errors.New("audit record not found")
)
