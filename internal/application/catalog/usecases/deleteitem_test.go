package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	apperrors "vendra/internal/shared/errors"
)

func TestDeleteItem_Success(t *testing.T) {
	f := newFixture(t, 1)
	existing := reconstructedItem(t, "ACME", "Acme Corp", "", true)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return existing, nil
	}
	var deletedID uint
	f.repo.DeleteFunc = func(ctx context.Context, id uint) error {
		deletedID = id
		return nil
	}
	uc := NewDeleteItemUseCase(f.repo, testDescriptor, f.recorder, f.txManager, f.log)

	require.NoError(t, uc.Execute(context.Background(), 1, 9))

	assert.Equal(t, uint(1), deletedID)
	require.Len(t, f.auditRepo.appended, 1)
	record := f.auditRepo.appended[0]
	assert.Equal(t, audit.ActionDelete, record.Action())
	assert.Contains(t, record.Description(), `deleted brand "ACME"`)
}

func TestDeleteItem_NotFound(t *testing.T) {
	f := newFixture(t, 1)
	uc := NewDeleteItemUseCase(f.repo, testDescriptor, f.recorder, f.txManager, f.log)

	err := uc.Execute(context.Background(), 404, 9)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Empty(t, f.auditRepo.appended)
}

func TestDeleteItem_RowVanishedBetweenReadAndDelete(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "", true), nil
	}
	f.repo.DeleteFunc = func(ctx context.Context, id uint) error {
		return catalog.ErrItemNotFound
	}
	uc := NewDeleteItemUseCase(f.repo, testDescriptor, f.recorder, f.txManager, f.log)

	err := uc.Execute(context.Background(), 1, 9)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Empty(t, f.auditRepo.appended)
}

func TestDeleteItem_AuditDisabledStillDeletes(t *testing.T) {
	f := newFixture(t, 0)
	f.repo.GetByIDFunc = func(ctx context.Context, id uint) (*catalog.Item, error) {
		return reconstructedItem(t, "ACME", "Acme Corp", "", true), nil
	}
	deleted := false
	f.repo.DeleteFunc = func(ctx context.Context, id uint) error {
		deleted = true
		return nil
	}
	uc := NewDeleteItemUseCase(f.repo, testDescriptor, f.recorder, f.txManager, f.log)

	require.NoError(t, uc.Execute(context.Background(), 1, 9))
	assert.True(t, deleted)
	assert.Empty(t, f.auditRepo.appended)
}
