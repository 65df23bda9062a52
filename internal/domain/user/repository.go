package user

import "context"

// Repository defines persistence for principals.
type Repository interface {
	// Create inserts a new user and assigns its ID.
	Create(ctx context.Context, u *User) error

	// Update persists mutable user fields.
	Update(ctx context.Context, u *User) error

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByEmail retrieves a user by login email. Returns nil when absent.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// List retrieves users with the filtered total.
	List(ctx context.Context, skip, limit int) ([]*User, int64, error)
}
