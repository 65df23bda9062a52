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

func TestCreateItem_Success(t *testing.T) {
	f := newFixture(t, 2)
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, err := uc.Execute(context.Background(), dto.CreateItemRequest{
		Code:        "ACME",
		Name:        "Acme Corp",
		Description: "tools",
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "ACME", resp.Code)
	assert.True(t, resp.Active, "active defaults to true")
	assert.Equal(t, uint(7), resp.OwnerID)

	require.Len(t, f.auditRepo.appended, 1)
	record := f.auditRepo.appended[0]
	assert.Equal(t, audit.ActionCreate, record.Action())
	assert.Equal(t, "brand", record.EntityType())
	assert.Equal(t, uint(7), record.ActorID())
	assert.Contains(t, record.Description(), `created brand "ACME"`)
}

func TestCreateItem_ExplicitInactive(t *testing.T) {
	f := newFixture(t, 0)
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	resp, err := uc.Execute(context.Background(), dto.CreateItemRequest{
		Code:   "ACME",
		Name:   "Acme Corp",
		Active: boolPtr(false),
	}, 7)

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Empty(t, f.auditRepo.appended, "audit level 0 records nothing")
}

func TestCreateItem_DuplicateCodeConflict(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.ExistsByFieldFunc = func(ctx context.Context, field, value string, excludeID uint) (bool, error) {
		assert.Equal(t, "code", field)
		assert.Equal(t, "ACME", value)
		assert.Equal(t, uint(0), excludeID)
		return true, nil
	}
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, err := uc.Execute(context.Background(), dto.CreateItemRequest{Code: "ACME", Name: "Acme"}, 7)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
	assert.Empty(t, f.auditRepo.appended)
}

func TestCreateItem_RaceDuplicateOnInsert(t *testing.T) {
	f := newFixture(t, 1)
	f.repo.CreateFunc = func(ctx context.Context, item *catalog.Item) error {
		return catalog.ErrDuplicateValue
	}
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, err := uc.Execute(context.Background(), dto.CreateItemRequest{Code: "ACME", Name: "Acme"}, 7)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)
}

func TestCreateItem_RejectsSuspiciousInput(t *testing.T) {
	f := newFixture(t, 1)
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	created := false
	f.repo.CreateFunc = func(context.Context, *catalog.Item) error {
		created = true
		return nil
	}

	_, err := uc.Execute(context.Background(), dto.CreateItemRequest{
		Code: "AB",
		Name: "x; drop table brands",
	}, 7)

	require.Error(t, err)
	assert.False(t, created, "nothing reaches storage on validation failure")
}

func TestCreateItem_BlankCodeRejected(t *testing.T) {
	f := newFixture(t, 1)
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, err := uc.Execute(context.Background(), dto.CreateItemRequest{Code: "   ", Name: "Acme"}, 7)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateItem_AuditFailureRollsBack(t *testing.T) {
	f := newFixture(t, 2)
	f.auditRepo.AppendFunc = func(context.Context, *audit.Record) error {
		return assert.AnError
	}
	uc := NewCreateItemUseCase(f.repo, testDescriptor, f.recorder, f.sanitizer, f.txManager, f.log)

	_, err := uc.Execute(context.Background(), dto.CreateItemRequest{Code: "ACME", Name: "Acme"}, 7)
	assert.Error(t, err, "a failed audit append fails the whole create")
}
