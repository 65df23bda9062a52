package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/setting/usecases"
	"vendra/internal/interfaces/http/middleware"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// SettingHandler handles HTTP requests for runtime settings
type SettingHandler struct {
	getAuditLevelUC    *usecases.GetAuditLevelUseCase
	updateAuditLevelUC *usecases.UpdateAuditLevelUseCase
	logger             logger.Interface
}

// NewSettingHandler creates a new setting handler
func NewSettingHandler(
	getAuditLevelUC *usecases.GetAuditLevelUseCase,
	updateAuditLevelUC *usecases.UpdateAuditLevelUseCase,
	log logger.Interface,
) *SettingHandler {
	return &SettingHandler{
		getAuditLevelUC:    getAuditLevelUC,
		updateAuditLevelUC: updateAuditLevelUC,
		logger:             log,
	}
}

type auditLevelPayload struct {
	Level int `json:"level"`
}

// GetAuditLevel handles GET /settings/audit-level
func (h *SettingHandler) GetAuditLevel(c *gin.Context) {
	level, err := h.getAuditLevelUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", auditLevelPayload{Level: level})
}

// UpdateAuditLevel handles PUT /settings/audit-level
func (h *SettingHandler) UpdateAuditLevel(c *gin.Context) {
	var req auditLevelPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.updateAuditLevelUC.Execute(c.Request.Context(), req.Level, middleware.ActorID(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "audit level updated", auditLevelPayload{Level: req.Level})
}
