package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/sequence/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/sequence"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

type mockSequenceRepository struct {
	CreateTypeFunc  func(ctx context.Context, dt *sequence.DocumentType) error
	GetTypeByIDFunc func(ctx context.Context, id uint) (*sequence.DocumentType, error)
	ListTypesFunc   func(ctx context.Context) ([]*sequence.DocumentType, error)
	NextNumberFunc  func(ctx context.Context, documentTypeID uint, asOf time.Time) (*sequence.Allocation, error)
}

func (m *mockSequenceRepository) CreateType(ctx context.Context, dt *sequence.DocumentType) error {
	if m.CreateTypeFunc != nil {
		return m.CreateTypeFunc(ctx, dt)
	}
	dt.SetID(1)
	return nil
}

func (m *mockSequenceRepository) GetTypeByID(ctx context.Context, id uint) (*sequence.DocumentType, error) {
	if m.GetTypeByIDFunc != nil {
		return m.GetTypeByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSequenceRepository) ListTypes(ctx context.Context) ([]*sequence.DocumentType, error) {
	if m.ListTypesFunc != nil {
		return m.ListTypesFunc(ctx)
	}
	return nil, nil
}

func (m *mockSequenceRepository) NextNumber(ctx context.Context, documentTypeID uint, asOf time.Time) (*sequence.Allocation, error) {
	if m.NextNumberFunc != nil {
		return m.NextNumberFunc(ctx, documentTypeID, asOf)
	}
	return nil, sequence.ErrDocumentTypeNotFound
}

type mockAuditRepository struct {
	appended []*audit.Record
}

func (m *mockAuditRepository) Append(ctx context.Context, record *audit.Record) error {
	m.appended = append(m.appended, record)
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Record, int64, error) {
	return nil, 0, nil
}

type fixedLevelResolver struct{ level int }

func (r fixedLevelResolver) Resolve(context.Context) int { return r.level }

func newRecorder(auditRepo *mockAuditRepository, level int) *appaudit.Recorder {
	return appaudit.NewRecorder(auditRepo, fixedLevelResolver{level: level}, logger.NewLogger())
}

func TestAllocateNumber_Success(t *testing.T) {
	repo := &mockSequenceRepository{
		NextNumberFunc: func(ctx context.Context, documentTypeID uint, asOf time.Time) (*sequence.Allocation, error) {
			assert.Equal(t, uint(3), documentTypeID)
			assert.Equal(t, time.UTC, asOf.Location(), "allocation clock runs in UTC")
			return &sequence.Allocation{Number: "F-2026-00042", Sequence: 42, Year: 2026}, nil
		},
	}
	auditRepo := &mockAuditRepository{}
	uc := NewAllocateNumberUseCase(repo, newRecorder(auditRepo, 2), logger.NewLogger())

	resp, err := uc.Execute(context.Background(), 3, 9)

	require.NoError(t, err)
	assert.Equal(t, "F-2026-00042", resp.Number)
	assert.Equal(t, 42, resp.Sequence)
	assert.Equal(t, 2026, resp.Year)

	require.Len(t, auditRepo.appended, 1)
	assert.Equal(t, audit.ActionCreate, auditRepo.appended[0].Action())
	assert.Contains(t, auditRepo.appended[0].Description(), "F-2026-00042")
}

func TestAllocateNumber_TypeNotFound(t *testing.T) {
	auditRepo := &mockAuditRepository{}
	uc := NewAllocateNumberUseCase(&mockSequenceRepository{}, newRecorder(auditRepo, 2), logger.NewLogger())

	_, err := uc.Execute(context.Background(), 404, 9)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
	assert.Empty(t, auditRepo.appended)
}

func TestAllocateNumber_InactiveType(t *testing.T) {
	repo := &mockSequenceRepository{
		NextNumberFunc: func(ctx context.Context, documentTypeID uint, asOf time.Time) (*sequence.Allocation, error) {
			return nil, sequence.ErrDocumentTypeInactive
		},
	}
	auditRepo := &mockAuditRepository{}
	uc := NewAllocateNumberUseCase(repo, newRecorder(auditRepo, 2), logger.NewLogger())

	_, err := uc.Execute(context.Background(), 3, 9)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestCreateDocumentType(t *testing.T) {
	uc := NewCreateDocumentTypeUseCase(&mockSequenceRepository{}, logger.NewLogger())

	resp, err := uc.Execute(context.Background(), dto.CreateDocumentTypeRequest{
		Code:   " INVOICE ",
		Name:   "Customer invoice",
		Prefix: "F",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "INVOICE", resp.Code, "codes are trimmed")
	assert.True(t, resp.Active)
}

func TestCreateDocumentType_MissingCode(t *testing.T) {
	uc := NewCreateDocumentTypeUseCase(&mockSequenceRepository{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), dto.CreateDocumentTypeRequest{Name: "No code"})

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
}

func TestListDocumentTypes(t *testing.T) {
	repo := &mockSequenceRepository{
		ListTypesFunc: func(ctx context.Context) ([]*sequence.DocumentType, error) {
			first, err := sequence.NewDocumentType("INVOICE", "Customer invoice", "F")
			require.NoError(t, err)
			first.SetID(1)
			second, err := sequence.NewDocumentType("RECEIPT", "Receipt", "")
			require.NoError(t, err)
			second.SetID(2)
			return []*sequence.DocumentType{first, second}, nil
		},
	}
	uc := NewListDocumentTypesUseCase(repo, logger.NewLogger())

	types, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "INVOICE", types[0].Code)
	assert.Equal(t, "RECEIPT", types[1].Code)
}
