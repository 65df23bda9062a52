package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	apperrors "vendra/internal/shared/errors"
)

func TestUpdateItem_NotFound(t *testing.T) {
	f := newFixture(t, 1)
	uc := NewUpdateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, outcome, err := uc.Execute(context.Background(), 99, dto.UpdateItemRequest{
		Code: "ACME", Name: "Acme",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeNotFound, outcome)
	assert.Nil(t, resp)
}

func TestUpdateItem_UnchangedSkipsWriteAndAudit(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "tools", true), nil
	}
	updated := false
	f.repo.UpdateFunc = func(context.Context, *catalog.Item, []string) error {
		updated = true
		return nil
	}
	uc := NewUpdateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, outcome, err := uc.Execute(context.Background(), 1, dto.UpdateItemRequest{
		Code:        "ACME",
		Name:        "Acme Corp",
		Description: "tools",
		Active:      boolPtr(true),
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeUnchanged, outcome)
	assert.NotNil(t, resp)
	assert.False(t, updated, "no-op payload must not touch storage")
	assert.Empty(t, f.auditRepo.appended, "no-op payload must not produce an audit record")
}

func TestUpdateItem_ChangedFieldsPersistedAndAudited(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "tools", true), nil
	}
	var gotFields []string
	f.repo.UpdateFunc = func(ctx context.Context, item *catalog.Item, changedFields []string) error {
		gotFields = changedFields
		return nil
	}
	uc := NewUpdateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, outcome, err := uc.Execute(context.Background(), 1, dto.UpdateItemRequest{
		Code:        "ACME",
		Name:        "Acme Corporation",
		Description: "tools",
		Active:      boolPtr(false),
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeUpdated, outcome)
	assert.Equal(t, []string{"name", "active"}, gotFields)
	assert.Equal(t, "Acme Corporation", resp.Name)
	assert.False(t, resp.Active)

	require.Len(t, f.auditRepo.appended, 1)
	record := f.auditRepo.appended[0]
	assert.Equal(t, audit.ActionUpdate, record.Action())
	assert.Contains(t, record.Description(), `"Acme Corp" -> "Acme Corporation"`)
	assert.Contains(t, record.Description(), `"true" -> "false"`)
}

func TestUpdateItem_DuplicateCodeConflict(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "", true), nil
	}
	f.repo.ExistsByFieldFunc = func(ctx context.Context, field, value string, excludeID uint) (bool, error) {
		assert.Equal(t, uint(1), excludeID, "the item itself is excluded from the check")
		return true, nil
	}
	uc := NewUpdateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, _, err := uc.Execute(context.Background(), 1, dto.UpdateItemRequest{
		Code: "OTHER", Name: "Acme Corp",
	}, 7)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestUpdateItem_UnchangedCodeSkipsUniquenessCheck(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "", true), nil
	}
	checked := false
	f.repo.ExistsByFieldFunc = func(ctx context.Context, field, value string, excludeID uint) (bool, error) {
		checked = true
		return false, nil
	}
	uc := NewUpdateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, outcome, err := uc.Execute(context.Background(), 1, dto.UpdateItemRequest{
		Code: "ACME", Name: "New Name",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeUpdated, outcome)
	assert.False(t, checked, "only changed unique fields are checked")
}

func TestPatchItem_OnlySetFieldsTouched(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "tools", true), nil
	}
	var gotFields []string
	f.repo.UpdateFunc = func(ctx context.Context, item *catalog.Item, changedFields []string) error {
		gotFields = changedFields
		return nil
	}
	uc := NewPatchItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, outcome, err := uc.Execute(context.Background(), 1, dto.PatchItemRequest{
		Description: strPtr("updated description"),
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeUpdated, outcome)
	assert.Equal(t, []string{"description"}, gotFields)
	assert.Equal(t, "ACME", resp.Code, "unset fields keep their values")
	assert.Equal(t, "updated description", resp.Description)

	require.Len(t, f.auditRepo.appended, 1)
	assert.Equal(t, audit.ActionPatch, f.auditRepo.appended[0].Action())
}

func TestPatchItem_EmptyPayloadIsUnchanged(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "tools", true), nil
	}
	uc := NewPatchItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, outcome, err := uc.Execute(context.Background(), 1, dto.PatchItemRequest{}, 7)

	require.NoError(t, err)
	assert.Equal(t, catalog.OutcomeUnchanged, outcome)
	assert.Empty(t, f.auditRepo.appended)
}

func TestMaskSensitiveChanges(t *testing.T) {
	changes := []catalog.FieldChange{
		{Field: "name", Old: "Acme", New: "Acme Corp"},
		{Field: "token", Old: "old-secret", New: "new-secret"},
	}

	masked := maskSensitiveChanges(changes)

	assert.Equal(t, "Acme", masked[0].Old, "ordinary fields pass through")
	assert.Equal(t, "***", masked[1].Old)
	assert.Equal(t, "***", masked[1].New)
	assert.Equal(t, "new-secret", changes[1].New, "the original diff is left intact")
}
