package audit

import "context"

// ListFilter defines the filter options for reading the audit trail.
type ListFilter struct {
	Action     *Action
	EntityType *string
	ActorID    *uint
	Skip       int
	Limit      int
}

// Repository persists audit records. Append runs against the ambient
// transaction so that audit and data change commit or roll back
// together.
type Repository interface {
	Append(ctx context.Context, record *Record) error
	List(ctx context.Context, filter ListFilter) ([]*Record, int64, error)
}

// LevelResolver reads the runtime audit level. Implementations must
// not cache: every call reflects the latest persisted value.
type LevelResolver interface {
	Resolve(ctx context.Context) int
}
