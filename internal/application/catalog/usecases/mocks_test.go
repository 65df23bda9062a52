package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/db"
	"vendra/internal/shared/logger"
)

type mockCatalogRepository struct {
	CreateFunc        func(ctx context.Context, item *catalog.Item) error
	UpdateFunc        func(ctx context.Context, item *catalog.Item, changedFields []string) error
	DeleteFunc        func(ctx context.Context, id uint) error
	GetByIDFunc       func(ctx context.Context, id uint) (*catalog.Item, error)
	GetByCodeFunc     func(ctx context.Context, code string) (*catalog.Item, error)
	ListFunc          func(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Item, int64, error)
	ExistsByFieldFunc func(ctx context.Context, field, value string, excludeID uint) (bool, error)
}

func (m *mockCatalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return item.SetID(1)
}

func (m *mockCatalogRepository) Update(ctx context.Context, item *catalog.Item, changedFields []string) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item, changedFields)
	}
	return nil
}

func (m *mockCatalogRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCatalogRepository) GetByID(ctx context.Context, id uint) (*catalog.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetByCode(ctx context.Context, code string) (*catalog.Item, error) {
	if m.GetByCodeFunc != nil {
		return m.GetByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockCatalogRepository) List(ctx context.Context, filter catalog.ListFilter) ([]*catalog.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCatalogRepository) ExistsByField(ctx context.Context, field, value string, excludeID uint) (bool, error) {
	if m.ExistsByFieldFunc != nil {
		return m.ExistsByFieldFunc(ctx, field, value, excludeID)
	}
	return false, nil
}

type mockAuditRepository struct {
	AppendFunc func(ctx context.Context, record *audit.Record) error

	appended []*audit.Record
}

func (m *mockAuditRepository) Append(ctx context.Context, record *audit.Record) error {
	m.appended = append(m.appended, record)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, record)
	}
	return nil
}

func (m *mockAuditRepository) List(ctx context.Context, filter audit.ListFilter) ([]*audit.Record, int64, error) {
	return nil, 0, nil
}

type fixedLevelResolver struct{ level int }

func (r fixedLevelResolver) Resolve(context.Context) int { return r.level }

var testDescriptor = catalog.Descriptor{
	Type:         "brand",
	Table:        "brands",
	UniqueFields: []string{"code"},
	SearchFields: []string{"code", "name"},
	OrderField:   "name",
}

// testFixture bundles the collaborators every catalog use case needs.
type testFixture struct {
	repo      *mockCatalogRepository
	auditRepo *mockAuditRepository
	recorder  *appaudit.Recorder
	sanitizer *sanitize.Sanitizer
	txManager *db.TransactionManager
	log       logger.Interface
}

func newFixture(t *testing.T, auditLevel int) *testFixture {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	auditRepo := &mockAuditRepository{}
	log := logger.NewLogger()

	return &testFixture{
		repo:      &mockCatalogRepository{},
		auditRepo: auditRepo,
		recorder:  appaudit.NewRecorder(auditRepo, fixedLevelResolver{auditLevel}, log),
		sanitizer: sanitize.New(nil),
		txManager: db.NewTransactionManager(gormDB),
		log:       log,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func timeAt(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func reconstructedItem(t *testing.T, code, name, description string, active bool) *catalog.Item {
	t.Helper()
	item, err := catalog.ReconstructItem(1, testDescriptor.Type, code, name, description, active, 5,
		timeAt(2025, 1, 1), timeAt(2025, 1, 1))
	require.NoError(t, err)
	return item
}
