package dto

import "time"

// CreateRoleRequest registers a new role with its scope list.
type CreateRoleRequest struct {
	Code    string   `json:"code" validate:"required,max=50"`
	Name    string   `json:"name" validate:"required,max=100"`
	Type    string   `json:"type" validate:"max=50"`
	Scopes  []string `json:"scopes"`
	IsAdmin bool     `json:"is_admin"`
}

// RoleResponse is the outward shape of a role.
type RoleResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Scopes    []string  `json:"scopes"`
	IsAdmin   bool      `json:"is_admin"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
