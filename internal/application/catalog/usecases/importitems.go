package usecases

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	appaudit "vendra/internal/application/audit"
	"vendra/internal/application/catalog/dto"
	"vendra/internal/domain/audit"
	"vendra/internal/domain/catalog"
	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/db"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
)

// falsy tokens recognized in the active column, matched after lowering
// and stripping diacritics so "Sí" and "si" both read as truthy.
// Anything not explicitly falsy imports as active.
var falsyTokens = map[string]bool{
	"0":     true,
	"false": true,
	"f":     true,
	"no":    true,
	"n":     true,
}

var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

func parseActive(raw string) bool {
	stripped, _, err := transform.String(diacriticStripper, strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		stripped = strings.ToLower(strings.TrimSpace(raw))
	}
	return !falsyTokens[stripped]
}

// ImportItemsUseCase bulk-creates items from CSV. Each row commits in
// its own transaction: a bad row reports an error and the rest of the
// file still imports.
type ImportItemsUseCase struct {
	repo      catalog.Repository
	desc      catalog.Descriptor
	recorder  *appaudit.Recorder
	sanitizer *sanitize.Sanitizer
	txManager *db.TransactionManager
	maxRows   int
	logger    logger.Interface
}

// NewImportItemsUseCase creates a new import items use case
func NewImportItemsUseCase(
	repo catalog.Repository,
	desc catalog.Descriptor,
	recorder *appaudit.Recorder,
	sanitizer *sanitize.Sanitizer,
	txManager *db.TransactionManager,
	maxRows int,
	log logger.Interface,
) *ImportItemsUseCase {
	return &ImportItemsUseCase{
		repo:      repo,
		desc:      desc,
		recorder:  recorder,
		sanitizer: sanitizer,
		txManager: txManager,
		maxRows:   maxRows,
		logger:    log,
	}
}

// Execute reads the CSV and imports its rows. The first record is the
// header; the code column is mandatory, name, description and active
// are optional. Row counting in errors is 1-based over data rows.
func (uc *ImportItemsUseCase) Execute(ctx context.Context, r io.Reader, actorID uint) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.NewValidationError("empty or unreadable CSV file")
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["code"]; !ok {
		return nil, apperrors.NewValidationError("CSV header is missing the code column")
	}

	rows, err := uc.readRows(reader)
	if err != nil {
		return nil, err
	}
	if len(rows) > uc.maxRows {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("import exceeds the maximum of %d rows", uc.maxRows))
	}

	result := &dto.ImportResult{}
	seen := make(map[string]bool, len(rows))

	for i, record := range rows {
		rowNum := i + 1

		request, err := uc.rowToRequest(record, columns)
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Raw: record, Message: err.Error()})
			continue
		}

		if seen[request.Code] {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     rowNum,
				Raw:     record,
				Message: fmt.Sprintf("duplicate code %q within the file", request.Code),
			})
			continue
		}
		seen[request.Code] = true

		if err := uc.importRow(ctx, request, actorID); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Raw: record, Message: rowErrorMessage(err)})
			continue
		}

		result.Imported++
	}

	description := fmt.Sprintf("imported %d %s items, %d rows rejected",
		result.Imported, uc.desc.Type, result.Skipped)
	if err := uc.recorder.Record(ctx, audit.ActionImport, uc.desc.Type, nil, description, actorID); err != nil {
		uc.logger.Warnw("failed to record import audit", "error", err)
	}

	uc.logger.Infow("import finished",
		"entity_type", uc.desc.Type,
		"imported", result.Imported,
		"rejected", result.Skipped)

	return result, nil
}

func (uc *ImportItemsUseCase) readRows(reader *csv.Reader) ([][]string, error) {
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, apperrors.NewValidationError("malformed CSV file", err.Error())
		}
		rows = append(rows, record)
	}
}

func (uc *ImportItemsUseCase) rowToRequest(record []string, columns map[string]int) (*dto.CreateItemRequest, error) {
	cell := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	code := cell("code")
	if code == "" {
		return nil, catalog.ErrMissingCode
	}

	name := cell("name")
	if name == "" {
		name = code
	}

	request := &dto.CreateItemRequest{
		Code:        code,
		Name:        name,
		Description: cell("description"),
	}

	if _, ok := columns["active"]; ok {
		active := parseActive(cell("active"))
		request.Active = &active
	}

	if err := validateStrings(uc.sanitizer, map[string]*string{
		"code":        &request.Code,
		"name":        &request.Name,
		"description": &request.Description,
	}); err != nil {
		return nil, err
	}

	return request, nil
}

// importRow commits one row in its own transaction so that a failure
// never poisons the surrounding rows. The code is the natural key: a
// row whose code already exists patches the stored item, which makes
// re-running the same file idempotent.
func (uc *ImportItemsUseCase) importRow(ctx context.Context, request *dto.CreateItemRequest, actorID uint) error {
	active := true
	if request.Active != nil {
		active = *request.Active
	}

	return uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.repo.GetByCode(txCtx, request.Code)
		if err != nil {
			return err
		}

		if existing != nil {
			changes := existing.Apply(catalog.Attributes{
				Name:        &request.Name,
				Description: &request.Description,
				Active:      &active,
			})
			if len(changes) == 0 {
				return nil
			}
			return uc.repo.Update(txCtx, existing, catalog.ChangedFields(changes))
		}

		item, err := catalog.NewItem(uc.desc.Type, request.Code, request.Name, request.Description, active, actorID)
		if err != nil {
			return err
		}
		return uc.repo.Create(txCtx, item)
	})
}

func rowErrorMessage(err error) string {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, catalog.ErrDuplicateValue):
		return "code already exists"
	case errors.Is(err, catalog.ErrMissingCode):
		return "row is missing the code column"
	case errors.As(err, &appErr):
		return appErr.Message
	default:
		return "failed to import row"
	}
}
