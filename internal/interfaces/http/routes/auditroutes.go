package routes

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
)

// AuditRouteConfig holds dependencies for audit log routes.
type AuditRouteConfig struct {
	AuditHandler    *handlers.AuditHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ScopeMiddleware *middleware.ScopeMiddleware
}

// SetupAuditRoutes configures audit ledger query routes. Superusers
// pass the scope check implicitly.
func SetupAuditRoutes(group *gin.RouterGroup, cfg *AuditRouteConfig) {
	audit := group.Group("/audit-logs")
	audit.Use(cfg.AuthMiddleware.RequireAuth())
	{
		audit.GET("", cfg.ScopeMiddleware.RequireScope("audit:read"), cfg.AuditHandler.List)
	}
}
