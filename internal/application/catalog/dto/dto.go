package dto

import "time"

// CreateItemRequest creates one catalog item.
type CreateItemRequest struct {
	Code        string `json:"code" validate:"required,max=10"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Active      *bool  `json:"active"`
}

// UpdateItemRequest replaces the mutable fields of an item.
type UpdateItemRequest struct {
	Code        string `json:"code" validate:"required,max=10"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Active      *bool  `json:"active"`
}

// PatchItemRequest updates only the provided fields.
type PatchItemRequest struct {
	Code        *string `json:"code" validate:"omitempty,max=10"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Active      *bool   `json:"active"`
}

// ListItemsRequest filters and pages an item listing.
type ListItemsRequest struct {
	Search string
	Active *bool
	Skip   int
	Limit  int
}

// ItemResponse is the outward shape of a catalog item.
type ItemResponse struct {
	ID          uint      `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ImportRowError describes one rejected CSV row. Row numbers are
// 1-based and count data rows, not the header; Raw carries the row
// exactly as it appeared in the file so callers can fix and resubmit.
type ImportRowError struct {
	Row     int      `json:"row"`
	Raw     []string `json:"raw"`
	Message string   `json:"message"`
}

// ImportResult summarizes a CSV import.
type ImportResult struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Errors   []ImportRowError `json:"errors,omitempty"`
}
