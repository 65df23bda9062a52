package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/user/dto"
	"vendra/internal/application/user/usecases"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// UserHandler handles HTTP requests for user administration
type UserHandler struct {
	createUC     *usecases.CreateUserUseCase
	listUC       *usecases.ListUsersUseCase
	assignRoleUC *usecases.AssignRoleUseCase
	logger       logger.Interface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	listUC *usecases.ListUsersUseCase,
	assignRoleUC *usecases.AssignRoleUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC:     createUC,
		listUC:       listUC,
		assignRoleUC: assignRoleUC,
		logger:       log,
	}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
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

	utils.SuccessResponse(c, http.StatusCreated, "user created", resp)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	window := utils.ParsePageWindow(c)

	users, total, err := h.listUC.Execute(c.Request.Context(), window.Skip, window.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, window.Skip, window.Limit)
}

// AssignRole handles PUT /users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user id")
		return
	}

	var req dto.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.assignRoleUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role assigned", resp)
}
