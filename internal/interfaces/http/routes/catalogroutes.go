package routes

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/domain/catalog"
	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for one catalog entity type.
type CatalogRouteConfig struct {
	Handler            *handlers.CatalogHandler
	Descriptor         catalog.Descriptor
	AuthMiddleware     *middleware.AuthMiddleware
	ScopeMiddleware    *middleware.ScopeMiddleware
	SanitizeMiddleware *middleware.SanitizeMiddleware
	UploadContentTypes []string
}

// SetupCatalogRoutes mounts the CRUD and import routes for one entity
// type under the given path, with per-action scope checks.
func SetupCatalogRoutes(group *gin.RouterGroup, path string, cfg *CatalogRouteConfig) {
	desc := cfg.Descriptor

	items := group.Group(path)
	items.Use(cfg.AuthMiddleware.RequireAuth())
	{
		items.GET("", cfg.ScopeMiddleware.RequireScope(desc.Scope("read")), cfg.Handler.List)
		items.GET("/:id", cfg.ScopeMiddleware.RequireScope(desc.Scope("read")), cfg.Handler.Get)
		items.POST("", cfg.ScopeMiddleware.RequireScope(desc.Scope("write")), cfg.Handler.Create)
		items.PUT("/:id", cfg.ScopeMiddleware.RequireScope(desc.Scope("write")), cfg.Handler.Update)
		items.PATCH("/:id", cfg.ScopeMiddleware.RequireScope(desc.Scope("write")), cfg.Handler.Patch)
		items.DELETE("/:id", cfg.ScopeMiddleware.RequireScope(desc.Scope("delete")), cfg.Handler.Delete)
		items.POST("/import",
			cfg.ScopeMiddleware.RequireScope(desc.Scope("import")),
			cfg.SanitizeMiddleware.GuardUpload(cfg.UploadContentTypes),
			cfg.Handler.Import)
	}
}
