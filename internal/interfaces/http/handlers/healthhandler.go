package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vendra/internal/shared/logger"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database *gorm.DB, log logger.Interface) *HealthHandler {
	return &HealthHandler{
		db:     database,
		logger: log,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Errorw("health check database ping failed", "error", err)
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status})
}
