// Package routes provides HTTP route configurations.
package routes

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/interfaces/http/handlers"
	"vendra/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures login, refresh, and logout routes.
func SetupAuthRoutes(group *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := group.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
		auth.POST("/logout", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Logout)
	}
}
