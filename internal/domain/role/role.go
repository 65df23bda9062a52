// Package role provides the scope-bundle domain model.
package role

import (
	"fmt"
	"strings"
	"time"
)

// Role bundles capability scopes under a named code. Scopes are
// resource:action strings.
type Role struct {
	id        uint
	code      string
	name      string
	roleType  string
	scopes    []string
	isAdmin   bool
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewRole creates a new role.
func NewRole(code, name, roleType string, scopes []string, isAdmin bool) (*Role, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, fmt.Errorf("role code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	for _, s := range scopes {
		if !ValidScope(s) {
			return nil, fmt.Errorf("invalid scope: %s", s)
		}
	}

	now := time.Now().UTC()
	return &Role{
		code:      code,
		name:      name,
		roleType:  roleType,
		scopes:    dedupe(scopes),
		isAdmin:   isAdmin,
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructRole reconstructs a role from persistence.
func ReconstructRole(
	id uint,
	code string,
	name string,
	roleType string,
	scopes []string,
	isAdmin bool,
	active bool,
	createdAt, updatedAt time.Time,
) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}
	if code == "" {
		return nil, fmt.Errorf("role code is required")
	}

	return &Role{
		id:        id,
		code:      code,
		name:      name,
		roleType:  roleType,
		scopes:    scopes,
		isAdmin:   isAdmin,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// ValidScope reports whether s is a well-formed resource:action scope.
func ValidScope(s string) bool {
	parts := strings.Split(s, ":")
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}

func dedupe(scopes []string) []string {
	seen := make(map[string]bool, len(scopes))
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ID returns the role ID.
func (r *Role) ID() uint { return r.id }

// Code returns the role code.
func (r *Role) Code() string { return r.code }

// Name returns the role name.
func (r *Role) Name() string { return r.name }

// RoleType returns the role-type tag.
func (r *Role) RoleType() string { return r.roleType }

// Scopes returns the granted scope strings.
func (r *Role) Scopes() []string { return r.scopes }

// IsAdmin returns the admin flag.
func (r *Role) IsAdmin() bool { return r.isAdmin }

// Active returns whether the role may be assigned.
func (r *Role) Active() bool { return r.active }

// CreatedAt returns the creation timestamp.
func (r *Role) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (r *Role) UpdatedAt() time.Time { return r.updatedAt }

// SetID assigns the storage-generated ID after insert.
func (r *Role) SetID(id uint) {
	if r.id == 0 {
		r.id = id
	}
}

// HasScope reports whether the role grants the given scope.
func (r *Role) HasScope(scope string) bool {
	for _, s := range r.scopes {
		if s == scope {
			return true
		}
	}
	return false
}
