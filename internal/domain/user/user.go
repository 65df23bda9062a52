// Package user provides the principal domain model.
package user

import (
	"fmt"
	"strings"
	"time"
)

// User is an authenticated principal. Principals are never physically
// deleted; deactivation happens through the active flag.
type User struct {
	id             uint
	email          string
	name           string
	hashedPassword string
	active         bool
	superuser      bool
	roleID         *uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewUser creates a new principal.
func NewUser(email, name, hashedPassword string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if hashedPassword == "" {
		return nil, fmt.Errorf("hashed password is required")
	}

	now := time.Now().UTC()
	return &User{
		email:          email,
		name:           name,
		hashedPassword: hashedPassword,
		active:         true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructUser reconstructs a principal from persistence.
func ReconstructUser(
	id uint,
	email string,
	name string,
	hashedPassword string,
	active bool,
	superuser bool,
	roleID *uint,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:             id,
		email:          email,
		name:           name,
		hashedPassword: hashedPassword,
		active:         active,
		superuser:      superuser,
		roleID:         roleID,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

// ID returns the user ID.
func (u *User) ID() uint { return u.id }

// Email returns the login email.
func (u *User) Email() string { return u.email }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// HashedPassword returns the bcrypt hash.
func (u *User) HashedPassword() string { return u.hashedPassword }

// Active returns whether the principal may authenticate.
func (u *User) Active() bool { return u.active }

// Superuser returns whether scope checks are bypassed.
func (u *User) Superuser() bool { return u.superuser }

// RoleID returns the optional role reference.
func (u *User) RoleID() *uint { return u.roleID }

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetID assigns the storage-generated ID after insert.
func (u *User) SetID(id uint) {
	if u.id == 0 {
		u.id = id
	}
}

// Deactivate soft-disables the principal.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}

// Activate re-enables the principal.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now().UTC()
}

// AssignRole points the principal at a role.
func (u *User) AssignRole(roleID uint) {
	u.roleID = &roleID
	u.updatedAt = time.Now().UTC()
}

// GrantSuperuser flags the principal as superuser.
func (u *User) GrantSuperuser() {
	u.superuser = true
	u.updatedAt = time.Now().UTC()
}
