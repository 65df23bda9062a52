package http

import (
	"vendra/internal/interfaces/http/middleware"
	"vendra/internal/interfaces/http/routes"
)

// setupRoutes applies the global middleware chain and mounts every
// route group on the engine.
func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Recovery())
	c.engine.Use(middleware.ErrorHandler())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	if c.cfg.RateLimit.Enabled {
		c.engine.Use(c.rateLimitMiddleware.Limit())
	}
	c.engine.Use(c.sanitizeMiddleware.CleanJSONBody())

	c.engine.GET("/health", c.healthHandler.Check)

	api := c.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    c.authHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCatalogRoutes(api, "/brands", &routes.CatalogRouteConfig{
		Handler:            c.brandHandler,
		Descriptor:         BrandDescriptor,
		AuthMiddleware:     c.authMiddleware,
		ScopeMiddleware:    c.scopeMiddleware,
		SanitizeMiddleware: c.sanitizeMiddleware,
		UploadContentTypes: c.cfg.Security.AllowedContentTypes,
	})
	routes.SetupCatalogRoutes(api, "/categories", &routes.CatalogRouteConfig{
		Handler:            c.categoryHandler,
		Descriptor:         CategoryDescriptor,
		AuthMiddleware:     c.authMiddleware,
		ScopeMiddleware:    c.scopeMiddleware,
		SanitizeMiddleware: c.sanitizeMiddleware,
		UploadContentTypes: c.cfg.Security.AllowedContentTypes,
	})

	routes.SetupAuditRoutes(api, &routes.AuditRouteConfig{
		AuditHandler:    c.auditHandler,
		AuthMiddleware:  c.authMiddleware,
		ScopeMiddleware: c.scopeMiddleware,
	})

	routes.SetupSequenceRoutes(api, &routes.SequenceRouteConfig{
		SequenceHandler: c.sequenceHandler,
		AuthMiddleware:  c.authMiddleware,
		ScopeMiddleware: c.scopeMiddleware,
	})

	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		UserHandler:     c.userHandler,
		RoleHandler:     c.roleHandler,
		SettingHandler:  c.settingHandler,
		AuthMiddleware:  c.authMiddleware,
		ScopeMiddleware: c.scopeMiddleware,
	})
}
