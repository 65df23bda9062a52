package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
)

var brandDescriptor = catalog.Descriptor{
	Type:         "brand",
	Table:        constants.TableBrands,
	UniqueFields: []string{"code"},
	SearchFields: []string{"code", "name"},
	OrderField:   "name",
}

func newTestRepository(t *testing.T) catalog.Repository {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.BrandModel{}))

	repo, err := NewCatalogRepository(database, brandDescriptor, logger.NewLogger())
	require.NoError(t, err)
	return repo
}

func newBrand(t *testing.T, code, name string, active bool) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("brand", code, name, "", active, 1)
	require.NoError(t, err)
	return item
}

func TestCatalogRepository_CreateAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))
	assert.NotZero(t, item.ID(), "Create assigns the generated ID")

	found, err := repo.GetByID(ctx, item.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "ACME", found.Code())
	assert.Equal(t, "Acme Corp", found.Name())
	assert.True(t, found.Active())
	assert.Equal(t, uint(1), found.OwnerID())
}

func TestCatalogRepository_GetByID_Absent(t *testing.T) {
	repo := newTestRepository(t)

	found, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCatalogRepository_GetByCode(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBrand(t, "ACME", "Acme Corp", true)))

	found, err := repo.GetByCode(ctx, "ACME")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme Corp", found.Name())

	missing, err := repo.GetByCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogRepository_Create_DuplicateCode(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBrand(t, "ACME", "Acme Corp", true)))

	err := repo.Create(ctx, newBrand(t, "ACME", "Another", true))
	assert.ErrorIs(t, err, catalog.ErrDuplicateValue)
}

func TestCatalogRepository_Update_ChangedColumnsOnly(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))

	newName := "Acme Holdings"
	inactive := false
	item.Apply(catalog.Attributes{Name: &newName, Active: &inactive})

	require.NoError(t, repo.Update(ctx, item, []string{"name", "active"}))

	found, err := repo.GetByID(ctx, item.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme Holdings", found.Name())
	assert.False(t, found.Active())
	assert.Equal(t, "ACME", found.Code(), "untouched columns survive")
}

func TestCatalogRepository_Update_MissingRow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))
	require.NoError(t, repo.Delete(ctx, item.ID()))

	err := repo.Update(ctx, item, []string{"name"})
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestCatalogRepository_Update_NoChangedFieldsIsNoop(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))

	assert.NoError(t, repo.Update(ctx, item, nil))
}

func TestCatalogRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID()))

	found, err := repo.GetByID(ctx, item.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.ErrorIs(t, repo.Delete(ctx, item.ID()), catalog.ErrItemNotFound)
}

func TestCatalogRepository_List_SearchAndFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBrand(t, "ACME", "Acme Corp", true)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "GLOB", "Globex", true)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "INIT", "Initech", false)))

	items, total, err := repo.List(ctx, catalog.ListFilter{Search: "acme", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "ACME", items[0].Code(), "search is case insensitive over code and name")

	active := true
	items, total, err = repo.List(ctx, catalog.ListFilter{Active: &active, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)
}

func TestCatalogRepository_List_TotalIgnoresPageWindow(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBrand(t, "AA", "Alpha", true)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "BB", "Beta", true)))
	require.NoError(t, repo.Create(ctx, newBrand(t, "CC", "Gamma", true)))

	items, total, err := repo.List(ctx, catalog.ListFilter{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Beta", items[0].Name(), "ordering follows the descriptor order field")
}

func TestCatalogRepository_ExistsByField(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item := newBrand(t, "ACME", "Acme Corp", true)
	require.NoError(t, repo.Create(ctx, item))

	exists, err := repo.ExistsByField(ctx, "code", "ACME", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByField(ctx, "code", "ACME", item.ID())
	require.NoError(t, err)
	assert.False(t, exists, "the row itself is excluded")

	exists, err = repo.ExistsByField(ctx, "code", "NOPE", 0)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.ExistsByField(ctx, "name", "Acme Corp", 0)
	assert.Error(t, err, "only declared unique fields may be probed")
}
