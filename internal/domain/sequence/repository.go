package sequence

import (
	"context"
	"time"
)

// Repository persists document types and issued numbers.
type Repository interface {
	// GetTypeByID retrieves a document type. Returns nil when absent.
	GetTypeByID(ctx context.Context, id uint) (*DocumentType, error)

	// ListTypes retrieves all document types.
	ListTypes(ctx context.Context) ([]*DocumentType, error)

	// CreateType inserts a new document type and assigns its ID.
	CreateType(ctx context.Context, dt *DocumentType) error

	// NextNumber locks the document type row, derives max(sequence)+1
	// for the calendar year of asOf, records the issued number, and
	// returns it. Concurrent calls for the same type serialize on the
	// row lock; different types proceed independently.
	NextNumber(ctx context.Context, documentTypeID uint, asOf time.Time) (*Allocation, error)
}
