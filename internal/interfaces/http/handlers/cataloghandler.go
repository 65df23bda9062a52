package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/catalog/dto"
	"vendra/internal/application/catalog/usecases"
	"vendra/internal/domain/catalog"
	"vendra/internal/interfaces/http/middleware"
	apperrors "vendra/internal/shared/errors"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// CatalogHandler serves the CRUD and import endpoints of one catalog
// entity type. The router instantiates one handler per descriptor.
type CatalogHandler struct {
	desc     catalog.Descriptor
	createUC *usecases.CreateItemUseCase
	getUC    *usecases.GetItemUseCase
	listUC   *usecases.ListItemsUseCase
	updateUC *usecases.UpdateItemUseCase
	patchUC  *usecases.PatchItemUseCase
	deleteUC *usecases.DeleteItemUseCase
	importUC *usecases.ImportItemsUseCase
	logger   logger.Interface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	desc catalog.Descriptor,
	createUC *usecases.CreateItemUseCase,
	getUC *usecases.GetItemUseCase,
	listUC *usecases.ListItemsUseCase,
	updateUC *usecases.UpdateItemUseCase,
	patchUC *usecases.PatchItemUseCase,
	deleteUC *usecases.DeleteItemUseCase,
	importUC *usecases.ImportItemsUseCase,
	log logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		desc:     desc,
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		patchUC:  patchUC,
		deleteUC: deleteUC,
		importUC: importUC,
		logger:   log,
	}
}

// Create handles POST /{entity}
func (h *CatalogHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create", "entity_type", h.desc.Type, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp)
}

// Get handles GET /{entity}/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getUC.Execute(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// List handles GET /{entity}
func (h *CatalogHandler) List(c *gin.Context) {
	window := utils.ParsePageWindow(c)

	req := dto.ListItemsRequest{
		Search: c.Query("search"),
		Skip:   window.Skip,
		Limit:  window.Limit,
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "active must be a boolean")
			return
		}
		req.Active = &active
	}

	items, total, err := h.listUC.Execute(c.Request.Context(), req, middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, window.Skip, window.Limit)
}

// Update handles PUT /{entity}/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, outcome, err := h.updateUC.Execute(c.Request.Context(), id, req, middleware.ActorID(c))
	h.respondUpdate(c, resp, outcome, err)
}

// Patch handles PATCH /{entity}/:id
func (h *CatalogHandler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.PatchItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, outcome, err := h.patchUC.Execute(c.Request.Context(), id, req, middleware.ActorID(c))
	h.respondUpdate(c, resp, outcome, err)
}

func (h *CatalogHandler) respondUpdate(c *gin.Context, resp *dto.ItemResponse, outcome catalog.UpdateOutcome, err error) {
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	switch outcome {
	case catalog.OutcomeNotFound:
		utils.ErrorResponseWithError(c, apperrors.NewNotFoundError(h.desc.Type+" not found"))
	case catalog.OutcomeUnchanged:
		utils.SuccessResponse(c, http.StatusOK, "no changes", resp)
	default:
		utils.SuccessResponse(c, http.StatusOK, "", resp)
	}
}

// Delete handles DELETE /{entity}/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Import handles POST /{entity}/import with a CSV file field.
func (h *CatalogHandler) Import(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := h.importUC.Execute(c.Request.Context(), file, middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid id parameter", raw)
	}
	return uint(id), nil
}
