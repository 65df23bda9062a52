package catalog

import "context"

// ListFilter defines the filter options for listing catalog items.
type ListFilter struct {
	Search string
	Active *bool
	Skip   int
	Limit  int
}

// Repository defines persistence for one catalog entity type. An
// implementation is bound to a Descriptor at construction time.
type Repository interface {
	// Create inserts a new item and assigns its ID.
	Create(ctx context.Context, item *Item) error

	// Update persists the given changed columns of an existing item.
	Update(ctx context.Context, item *Item, changedFields []string) error

	// Delete hard deletes an item by ID.
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves an item by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Item, error)

	// GetByCode retrieves an item by its natural key. Returns nil when absent.
	GetByCode(ctx context.Context, code string) (*Item, error)

	// List retrieves items matching the filter along with the filtered
	// total computed before pagination.
	List(ctx context.Context, filter ListFilter) ([]*Item, int64, error)

	// ExistsByField checks whether another row (excluding excludeID)
	// holds the given exact value in the named unique field.
	ExistsByField(ctx context.Context, field, value string, excludeID uint) (bool, error)
}
