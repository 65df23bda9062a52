package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Attributes carries the mutable fields of an item. Nil pointers mean
// "leave as is", which makes the same type serve both full updates and
// partial patches.
type Attributes struct {
	Code        *string
	Name        *string
	Description *string
	Active      *bool
}

// FieldChange records one old -> new transition produced by Apply.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

func (c FieldChange) String() string {
	return fmt.Sprintf("%s: %q -> %q", c.Field, c.Old, c.New)
}

// DescribeChanges renders a field diff for audit descriptions.
func DescribeChanges(changes []FieldChange) string {
	parts := make([]string, 0, len(changes))
	for _, c := range changes {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, "; ")
}

// ChangedFields lists the column names touched by a diff.
func ChangedFields(changes []FieldChange) []string {
	fields := make([]string, 0, len(changes))
	for _, c := range changes {
		fields = append(fields, c.Field)
	}
	return fields
}

// Apply copies the set attributes onto the item through a statically
// declared field mapping and returns the resulting diff. Unknown fields
// cannot reach this path at all; an empty diff leaves updatedAt alone.
func (i *Item) Apply(attrs Attributes) []FieldChange {
	var changes []FieldChange

	if attrs.Code != nil {
		if code := strings.TrimSpace(*attrs.Code); code != "" && code != i.code {
			changes = append(changes, FieldChange{Field: "code", Old: i.code, New: code})
			i.code = code
		}
	}
	if attrs.Name != nil {
		if name := strings.TrimSpace(*attrs.Name); name != "" && name != i.name {
			changes = append(changes, FieldChange{Field: "name", Old: i.name, New: name})
			i.name = name
		}
	}
	if attrs.Description != nil && *attrs.Description != i.description {
		changes = append(changes, FieldChange{Field: "description", Old: i.description, New: *attrs.Description})
		i.description = *attrs.Description
	}
	if attrs.Active != nil && *attrs.Active != i.active {
		changes = append(changes, FieldChange{
			Field: "active",
			Old:   strconv.FormatBool(i.active),
			New:   strconv.FormatBool(*attrs.Active),
		})
		i.active = *attrs.Active
	}

	if len(changes) > 0 {
		i.updatedAt = time.Now().UTC()
	}

	return changes
}
