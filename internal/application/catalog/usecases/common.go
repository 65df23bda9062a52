// Package usecases implements the catalog engine operations. Every use
// case is bound to one descriptor; the same code serves brands,
// categories, and any further catalog type registered in the router.
package usecases

import (
	"context"
	"fmt"

	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/utils"
)

func toItemResponse(item *catalog.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
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

// validateStrings runs the strict input check over the writable text
// fields of a payload. Nil pointers are skipped.
func validateStrings(s *sanitize.Sanitizer, fields map[string]*string) error {
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := s.Validate(name, *value); err != nil {
			return err
		}
	}
	return nil
}

// checkUniqueness verifies the changed unique fields against other
// rows, excluding the item itself on updates.
func checkUniqueness(ctx context.Context, repo catalog.Repository, desc catalog.Descriptor, item *catalog.Item, changedFields []string, excludeID uint) error {
	for _, field := range changedFields {
		if !desc.IsUniqueField(field) {
			continue
		}
		value := fieldValue(item, field)
		exists, err := repo.ExistsByField(ctx, field, value, excludeID)
		if err != nil {
			return err
		}
		if exists {
			return catalog.ErrDuplicateValue
		}
	}
	return nil
}

func fieldValue(item *catalog.Item, field string) string {
	switch field {
	case "code":
		return item.Code()
	case "name":
		return item.Name()
	default:
		return ""
	}
}

func describeAction(verb string, desc catalog.Descriptor, item *catalog.Item) string {
	return fmt.Sprintf("%s %s %q", verb, desc.Type, item.Code())
}

// maskSensitiveChanges obfuscates the values of sensitive fields in a
// diff before it is rendered into an audit description. Catalog items
// carry no such fields today, but descriptors are open-ended and the
// ledger must never echo a credential.
func maskSensitiveChanges(changes []catalog.FieldChange) []catalog.FieldChange {
	masked := make([]catalog.FieldChange, len(changes))
	for i, change := range changes {
		if utils.IsSensitiveField(change.Field) {
			change.Old = utils.ObfuscateValue(change.Old)
			change.New = utils.ObfuscateValue(change.New)
		}
		masked[i] = change
	}
	return masked
}
