package routes

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
)

// SequenceRouteConfig holds dependencies for document numbering routes.
type SequenceRouteConfig struct {
	SequenceHandler *handlers.SequenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
	ScopeMiddleware *middleware.ScopeMiddleware
}

// SetupSequenceRoutes configures document type and number allocation
// routes. Registering a new document type reshapes the numbering
// scheme, so it is held to management role types on top of the scope.
func SetupSequenceRoutes(group *gin.RouterGroup, cfg *SequenceRouteConfig) {
	types := group.Group("/document-types")
	types.Use(cfg.AuthMiddleware.RequireAuth())
	{
		types.GET("", cfg.ScopeMiddleware.RequireScope("documents:read"), cfg.SequenceHandler.ListTypes)
		types.POST("",
			cfg.ScopeMiddleware.RequireScope("documents:write"),
			cfg.ScopeMiddleware.RequireRole("admin", "manager"),
			cfg.SequenceHandler.CreateType)
		types.POST("/:id/allocate", cfg.ScopeMiddleware.RequireScope("documents:allocate"), cfg.SequenceHandler.Allocate)
	}
}
