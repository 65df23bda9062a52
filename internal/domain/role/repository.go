package role

import "context"

// Repository defines persistence for roles.
type Repository interface {
	// Create inserts a new role and assigns its ID.
	Create(ctx context.Context, r *Role) error

	// GetByID retrieves a role by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Role, error)

	// GetByCode retrieves a role by code. Returns nil when absent.
	GetByCode(ctx context.Context, code string) (*Role, error)

	// ListActive retrieves all active roles.
	ListActive(ctx context.Context) ([]*Role, error)
}
