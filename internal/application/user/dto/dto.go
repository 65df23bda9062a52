package dto

import "time"

// CreateUserRequest registers a new principal.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	RoleID   *uint  `json:"role_id"`
}

// AssignRoleRequest attaches a role to a user.
type AssignRoleRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
}

// UserResponse is the outward shape of a principal. The password hash
// never leaves the application layer.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Superuser bool      `json:"superuser"`
	RoleID    *uint     `json:"role_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
