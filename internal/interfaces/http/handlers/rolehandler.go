package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/role/dto"
	"vendra/internal/application/role/usecases"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// RoleHandler handles HTTP requests for role administration
type RoleHandler struct {
	createUC *usecases.CreateRoleUseCase
	listUC   *usecases.ListRolesUseCase
	logger   logger.Interface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(
	createUC *usecases.CreateRoleUseCase,
	listUC *usecases.ListRolesUseCase,
	log logger.Interface,
) *RoleHandler {
	return &RoleHandler{
		createUC: createUC,
		listUC:   listUC,
		logger:   log,
	}
}

// Create handles POST /roles
func (h *RoleHandler) Create(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "role created", resp)
}

// List handles GET /roles
func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", roles)
}
