package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/sequence/dto"
	"vendra/internal/application/sequence/usecases"
	"vendra/internal/interfaces/http/middleware"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// SequenceHandler handles HTTP requests for document types and number allocation
type SequenceHandler struct {
	createTypeUC *usecases.CreateDocumentTypeUseCase
	listTypesUC  *usecases.ListDocumentTypesUseCase
	allocateUC   *usecases.AllocateNumberUseCase
	logger       logger.Interface
}

// NewSequenceHandler creates a new sequence handler
func NewSequenceHandler(
	createTypeUC *usecases.CreateDocumentTypeUseCase,
	listTypesUC *usecases.ListDocumentTypesUseCase,
	allocateUC *usecases.AllocateNumberUseCase,
	log logger.Interface,
) *SequenceHandler {
	return &SequenceHandler{
		createTypeUC: createTypeUC,
		listTypesUC:  listTypesUC,
		allocateUC:   allocateUC,
		logger:       log,
	}
}

// CreateType handles POST /document-types
func (h *SequenceHandler) CreateType(c *gin.Context) {
	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.createTypeUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "document type created", resp)
}

// ListTypes handles GET /document-types
func (h *SequenceHandler) ListTypes(c *gin.Context) {
	types, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", types)
}

// Allocate handles POST /document-types/:id/allocate
func (h *SequenceHandler) Allocate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid document type id")
		return
	}

	resp, err := h.allocateUC.Execute(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "", resp)
}
