package catalog

import "fmt"

// Descriptor parametrizes the generic engine for one concrete entity
// type: which fields are unique, which are searchable, how results are
// ordered, and the scope prefix authorization checks use.
type Descriptor struct {
	// Type is the entity type tag ("brand", "category", ...).
	Type string
	// Table is the storage table backing this entity type.
	Table string
	// UniqueFields are validated against existing rows on create and
	// on update of a changed unique field.
	UniqueFields []string
	// SearchFields take part in the case-insensitive substring search.
	SearchFields []string
	// OrderField orders list results.
	OrderField string
}

// Validate checks the descriptor is usable.
func (d Descriptor) Validate() error {
	if d.Type == "" {
		return fmt.Errorf("descriptor type is required")
	}
	if d.Table == "" {
		return fmt.Errorf("descriptor table is required")
	}
	if len(d.UniqueFields) == 0 {
		return fmt.Errorf("descriptor needs at least one unique field")
	}
	if d.OrderField == "" {
		return fmt.Errorf("descriptor order field is required")
	}
	return nil
}

// IsUniqueField reports whether field is one of the declared unique
// fields.
func (d Descriptor) IsUniqueField(field string) bool {
	for _, f := range d.UniqueFields {
		if f == field {
			return true
		}
	}
	return false
}

// Scope returns the capability string guarding the given action on
// this entity type, in resource:action form.
func (d Descriptor) Scope(action string) string {
	return d.Type + ":" + action
}
