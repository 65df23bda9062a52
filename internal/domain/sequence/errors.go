package sequence

import "errors"

var (
	// ErrDocumentTypeNotFound indicates the document type row was absent at lock time
	ErrDocumentTypeNotFound = errors.New("document type not found")

	// ErrDocumentTypeInactive indicates the document type no longer allocates numbers
	ErrDocumentTypeInactive = errors.New("document type is inactive")
)
