// Package catalog provides the generic domain model every code/name
// shaped entity (brand, category, ...) is managed through.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Item is the aggregate root for a catalog entity row. Concrete entity
// types (brand, category, ...) share this shape and differ only in
// their Descriptor.
type Item struct {
	id          uint
	entityType  string
	code        string
	name        string
	description string
	active      bool
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

// NewItem creates a new catalog item.
func NewItem(entityType, code, name, description string, active bool, ownerID uint) (*Item, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now().UTC()
	return &Item{
		entityType:  entityType,
		code:        code,
		name:        name,
		description: description,
		active:      active,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructItem reconstructs a catalog item from persistence.
func ReconstructItem(
	id uint,
	entityType string,
	code string,
	name string,
	description string,
	active bool,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}
	if code == "" {
		return nil, fmt.Errorf("code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Item{
		id:          id,
		entityType:  entityType,
		code:        code,
		name:        name,
		description: description,
		active:      active,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// ID returns the item ID.
func (i *Item) ID() uint { return i.id }

// EntityType returns the entity type tag.
func (i *Item) EntityType() string { return i.entityType }

// Code returns the natural key.
func (i *Item) Code() string { return i.code }

// Name returns the display name.
func (i *Item) Name() string { return i.name }

// Description returns the optional description.
func (i *Item) Description() string { return i.description }

// Active returns the soft-activation flag.
func (i *Item) Active() bool { return i.active }

// OwnerID returns the principal that created the item.
func (i *Item) OwnerID() uint { return i.ownerID }

// CreatedAt returns the creation timestamp.
func (i *Item) CreatedAt() time.Time { return i.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// SetID assigns the storage-generated ID after insert.
func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}
