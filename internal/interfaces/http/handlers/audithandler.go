package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vendra/internal/application/audit/dto"
	"vendra/internal/application/audit/usecases"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// AuditHandler serves the read-only audit trail API.
type AuditHandler struct {
	listUC *usecases.ListAuditLogsUseCase
	logger logger.Interface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(listUC *usecases.ListAuditLogsUseCase, log logger.Interface) *AuditHandler {
	return &AuditHandler{
		listUC: listUC,
		logger: log,
	}
}

// List handles GET /audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	window := utils.ParsePageWindow(c)

	req := dto.ListAuditLogsRequest{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		Skip:       window.Skip,
		Limit:      window.Limit,
	}
	if raw := c.Query("actor_id"); raw != "" {
		actorID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "actor_id must be an integer")
			return
		}
		req.ActorID = uint(actorID)
	}

	records, total, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, records, total, window.Skip, window.Limit)
}
