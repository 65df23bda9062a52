package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"vendra/internal/domain/catalog"
	"vendra/internal/shared/db"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// itemRow is the column projection shared by every catalog table.
// Tables are selected per descriptor, so the row carries no TableName.
type itemRow struct {
	ID          uint
	Code        string
	Name        string
	Description string
	Active      bool
	OwnerID     uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogRepository implements catalog.Repository for one descriptor.
// The same implementation serves every catalog table.
type CatalogRepository struct {
	db     *gorm.DB
	desc   catalog.Descriptor
	logger logger.Interface
}

// NewCatalogRepository creates a repository bound to a descriptor.
func NewCatalogRepository(database *gorm.DB, desc catalog.Descriptor, log logger.Interface) (catalog.Repository, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog descriptor: %w", err)
	}
	return &CatalogRepository{
		db:     database,
		desc:   desc,
		logger: log.With("entity_type", desc.Type),
	}, nil
}

func (r *CatalogRepository) table(ctx context.Context) *gorm.DB {
	return db.GetTxFromContext(ctx, r.db).WithContext(ctx).Table(r.desc.Table)
}

func (r *CatalogRepository) toDomain(row *itemRow) (*catalog.Item, error) {
	item, err := catalog.ReconstructItem(
		row.ID,
		r.desc.Type,
		row.Code,
		row.Name,
		row.Description,
		row.Active,
		row.OwnerID,
		row.CreatedAt,
		row.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct %s %d: %w", r.desc.Type, row.ID, err)
	}
	return item, nil
}

func toRow(item *catalog.Item) *itemRow {
	return &itemRow{
		ID:          item.ID(),
		Code:        item.Code(),
		Name:        item.Name(),
		Description: item.Description(),
		Active:      item.Active(),
		OwnerID:     item.OwnerID(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

// Create inserts a new item and assigns its ID.
func (r *CatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	row := toRow(item)

	if err := r.table(ctx).Create(row).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return catalog.ErrDuplicateValue
		}
		r.logger.Errorw("failed to create item", "code", item.Code(), "error", err)
		return fmt.Errorf("failed to create %s: %w", r.desc.Type, err)
	}

	if err := item.SetID(row.ID); err != nil {
		return fmt.Errorf("failed to set %s ID: %w", r.desc.Type, err)
	}

	r.logger.Infow("item created", "id", row.ID, "code", row.Code)
	return nil
}

// Update persists only the given changed columns.
func (r *CatalogRepository) Update(ctx context.Context, item *catalog.Item, changedFields []string) error {
	if len(changedFields) == 0 {
		return nil
	}

	row := toRow(item)
	columns := make([]string, 0, len(changedFields)+1)
	columns = append(columns, changedFields...)
	columns = append(columns, "updated_at")

	result := r.table(ctx).
		Where("id = ?", item.ID()).
		Select(columns).
		Updates(row)
	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return catalog.ErrDuplicateValue
		}
		r.logger.Errorw("failed to update item", "id", item.ID(), "error", result.Error)
		return fmt.Errorf("failed to update %s: %w", r.desc.Type, result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrItemNotFound
	}

	return nil
}

// Delete hard deletes an item by ID.
func (r *CatalogRepository) Delete(ctx context.Context, id uint) error {
	result := r.table(ctx).Where("id = ?", id).Delete(&itemRow{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete item", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete %s: %w", r.desc.Type, result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrItemNotFound
	}

	r.logger.Infow("item deleted", "id", id)
	return nil
}

// GetByID retrieves an item by ID. Returns nil when absent.
func (r *CatalogRepository) GetByID(ctx context.Context, id uint) (*catalog.Item, error) {
	var row itemRow
	if err := r.table(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get item by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", r.desc.Type, err)
	}
	return r.toDomain(&row)
}

// GetByCode retrieves an item by its natural key. Returns nil when absent.
func (r *CatalogRepository) GetByCode(ctx context.Context, code string) (*catalog.Item, error) {
	var row itemRow
	if err := r.table(ctx).Where("code = ?", code).Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get item by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get %s: %w", r.desc.Type, err)
	}
	return r.toDomain(&row)
}

// List retrieves items matching the filter with the filtered total.
func (r *CatalogRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Item, int64, error) {
	query := r.table(ctx)

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions := make([]string, 0, len(r.desc.SearchFields))
		args := make([]interface{}, 0, len(r.desc.SearchFields))
		for _, field := range r.desc.SearchFields {
			conditions = append(conditions, fmt.Sprintf("LOWER(%s) LIKE ?", field))
			args = append(args, pattern)
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	// Total reflects the filter, not the page window.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count items", "error", err)
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.desc.Type, err)
	}

	var rows []itemRow
	if err := query.
		Order(r.desc.OrderField).
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list items", "error", err)
		return nil, 0, fmt.Errorf("failed to list %s: %w", r.desc.Type, err)
	}

	items := make([]*catalog.Item, 0, len(rows))
	for i := range rows {
		item, err := r.toDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	return items, total, nil
}

// ExistsByField checks whether another row holds the given exact value
// in the named unique field.
func (r *CatalogRepository) ExistsByField(ctx context.Context, field, value string, excludeID uint) (bool, error) {
	if !r.desc.IsUniqueField(field) {
		return false, fmt.Errorf("field %q is not a unique field of %s", field, r.desc.Type)
	}

	query := r.table(ctx).Where(fmt.Sprintf("%s = ?", field), value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check field uniqueness", "field", field, "error", err)
		return false, fmt.Errorf("failed to check %s uniqueness: %w", r.desc.Type, err)
	}

	return count > 0, nil
}
