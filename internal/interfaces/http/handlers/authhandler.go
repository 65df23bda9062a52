package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/auth/dto"
	"vendra/internal/application/auth/usecases"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	loginUC   *usecases.LoginUseCase
	refreshUC *usecases.RefreshTokenUseCase
	logoutUC  *usecases.LogoutUseCase
	logger    logger.Interface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	refreshUC *usecases.RefreshTokenUseCase,
	logoutUC *usecases.LogoutUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		refreshUC: refreshUC,
		logoutUC:  logoutUC,
		logger:    log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.loginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.refreshUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// Body is optional; a bare logout still revokes the access token.
	_ = c.ShouldBindJSON(&req)

	h.logoutUC.Execute(c.Request.Context(), requestBearer(c), req)

	utils.SuccessResponse(c, http.StatusOK, "logged out", nil)
}

func requestBearer(c *gin.Context) string {
	header := c.GetHeader(constants.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
