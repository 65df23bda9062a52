package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/application/catalog/usecases"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/persistence/models"
	"vendra/internal/infrastructure/repository"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/db"
	"vendra/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var brandDescriptor = catalog.Descriptor{
	Type:         "brand",
	Table:        constants.TableBrands,
	UniqueFields: []string{"code"},
	SearchFields: []string{"code", "name"},
	OrderField:   "name",
}

// newImportTestRouter assembles the import endpoint over an in-memory
// store, the same wiring the container does per descriptor.
func newImportTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(
		&models.BrandModel{},
		&models.AuditLogModel{},
		&models.SystemSettingModel{},
	))

	log := logger.NewLogger()
	repo, err := repository.NewCatalogRepository(database, brandDescriptor, log)
	require.NoError(t, err)
	auditRepo := repository.NewAuditLogRepository(database, log)
	settingRepo := repository.NewSystemSettingRepository(database, log)
	recorder := appaudit.NewRecorder(auditRepo, appaudit.NewSettingLevelResolver(settingRepo, log), log)

	importUC := usecases.NewImportItemsUseCase(
		repo, brandDescriptor, recorder, sanitize.New(sanitize.DefaultFieldLimits),
		db.NewTransactionManager(database), 100, log)
	handler := NewCatalogHandler(brandDescriptor, nil, nil, nil, nil, nil, nil, importUC, log)

	router := gin.New()
	router.POST("/brands/import", handler.Import)
	return router
}

func postCSV(t *testing.T, router *gin.Engine, csv string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "items.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/brands/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeImportResult(t *testing.T, w *httptest.ResponseRecorder) dto.ImportResult {
	t.Helper()
	var envelope struct {
		Success bool             `json:"success"`
		Data    dto.ImportResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	return envelope.Data
}

func TestCatalogHandler_ImportAnswersCreated(t *testing.T) {
	router := newImportTestRouter(t)

	w := postCSV(t, router, "code,name\nAA,Alpha\nBB,Beta\n")

	assert.Equal(t, http.StatusCreated, w.Code)
	result := decodeImportResult(t, w)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Skipped)
}

func TestCatalogHandler_ImportRejectedRowCarriesRawRecord(t *testing.T) {
	router := newImportTestRouter(t)

	w := postCSV(t, router, "code,name\n,NoCode\nAA,Alpha\n")

	assert.Equal(t, http.StatusCreated, w.Code, "partial rejection still answers 201")
	result := decodeImportResult(t, w)
	assert.Equal(t, 1, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
	assert.Equal(t, []string{"", "NoCode"}, result.Errors[0].Raw)
	assert.NotEmpty(t, result.Errors[0].Message)
}

func TestCatalogHandler_ImportMissingFileField(t *testing.T) {
	router := newImportTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/brands/import", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
