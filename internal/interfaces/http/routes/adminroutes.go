package routes

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
)

// AdminRouteConfig holds dependencies for administration routes.
type AdminRouteConfig struct {
	UserHandler     *handlers.UserHandler
	RoleHandler     *handlers.RoleHandler
	SettingHandler  *handlers.SettingHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ScopeMiddleware *middleware.ScopeMiddleware
}

// SetupAdminRoutes configures user, role, and runtime setting routes.
// User and role management is superuser only; the audit level setting
// is readable with a scope so operators can inspect it.
func SetupAdminRoutes(group *gin.RouterGroup, cfg *AdminRouteConfig) {
	users := group.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), cfg.ScopeMiddleware.RequireSuperuser())
	{
		users.POST("", cfg.UserHandler.Create)
		users.GET("", cfg.UserHandler.List)
		users.PUT("/:id/role", cfg.UserHandler.AssignRole)
	}

	roles := group.Group("/roles")
	roles.Use(cfg.AuthMiddleware.RequireAuth(), cfg.ScopeMiddleware.RequireSuperuser())
	{
		roles.POST("", cfg.RoleHandler.Create)
		roles.GET("", cfg.RoleHandler.List)
	}

	settings := group.Group("/settings")
	settings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		settings.GET("/audit-level", cfg.ScopeMiddleware.RequireScope("settings:read"), cfg.SettingHandler.GetAuditLevel)
		settings.PUT("/audit-level", cfg.ScopeMiddleware.RequireSuperuser(), cfg.SettingHandler.UpdateAuditLevel)
	}
}
