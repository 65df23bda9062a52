// Package audit provides the append-only audit trail domain model.
package audit

import (
	"fmt"
	"time"
)

// Action classifies an audited operation.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionPatch  Action = "PATCH"
	ActionDelete Action = "DELETE"
	ActionGetAll Action = "GETALL"
	ActionGetID  Action = "GETID"
	ActionImport Action = "IMPORT"
)

// IsValid checks the action is one of the known classes.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionPatch, ActionDelete, ActionGetAll, ActionGetID, ActionImport:
		return true
	}
	return false
}

// IsRead reports whether the action only observes state.
func (a Action) IsRead() bool {
	return a == ActionGetAll || a == ActionGetID
}

// MinLevel returns the audit level at which this action class is
// recorded: mutations at 1, creates at 2, reads at 3. One canonical
// threshold per action class, deliberately not per entity.
func (a Action) MinLevel() int {
	switch {
	case a.IsRead():
		return 3
	case a == ActionCreate:
		return 2
	default:
		return 1
	}
}

// Record is one append-only audit trail entry. Records are never
// updated or deleted once written.
type Record struct {
	id          uint
	action      Action
	entityType  string
	entityID    *uint
	description string
	actorID     uint
	createdAt   time.Time
}

// NewRecord creates a new audit record.
func NewRecord(action Action, entityType string, entityID *uint, description string, actorID uint) (*Record, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}
	if entityType == "" {
		return nil, fmt.Errorf("entity type is required")
	}

	return &Record{
		action:      action,
		entityType:  entityType,
		entityID:    entityID,
		description: description,
		actorID:     actorID,
		createdAt:   time.Now().UTC(),
	}, nil
}

// ReconstructRecord reconstructs an audit record from persistence.
func ReconstructRecord(id uint, action Action, entityType string, entityID *uint, description string, actorID uint, createdAt time.Time) (*Record, error) {
	if id == 0 {
		return nil, fmt.Errorf("record ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid audit action: %s", action)
	}

	return &Record{
		id:          id,
		action:      action,
		entityType:  entityType,
		entityID:    entityID,
		description: description,
		actorID:     actorID,
		createdAt:   createdAt,
	}, nil
}

// ID returns the record ID.
func (r *Record) ID() uint { return r.id }

// Action returns the audited action class.
func (r *Record) Action() Action { return r.action }

// EntityType returns the audited entity type.
func (r *Record) EntityType() string { return r.entityType }

// EntityID returns the audited entity ID, if any.
func (r *Record) EntityID() *uint { return r.entityID }

// Description returns the human-readable change description.
func (r *Record) Description() string { return r.description }

// ActorID returns the acting principal.
func (r *Record) ActorID() uint { return r.actorID }

// CreatedAt returns the record timestamp.
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// SetID assigns the storage-generated ID after insert.
func (r *Record) SetID(id uint) {
	if r.id == 0 {
		r.id = id
	}
}
