package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// AuthMiddleware authenticates requests with bearer tokens. Only the
// Authorization header is consulted; no cookies, no query parameters.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     log,
	}
}

// RequireAuth rejects the request with 401 unless a valid, unrevoked
// access token is presented and its principal is still active.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.UnauthorizedResponse(c, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.UnauthorizedResponse(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Deactivation takes effect immediately, not at token expiry.
		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.logger.Errorw("failed to load principal", "user_id", claims.UserID, "error", err)
			utils.UnauthorizedResponse(c, "invalid or expired token")
			c.Abort()
			return
		}
		if u == nil || !u.Active() {
			utils.UnauthorizedResponse(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyScopes, claims.Scopes)
		c.Set(constants.ContextKeySuperuser, u.Superuser())

		c.Next()
	}
}

// OptionalAuth resolves the principal when a valid token is present
// and continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token, auth.TokenTypeAccess)
		if err != nil {
			c.Next()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.UserID)
		if err != nil || u == nil || !u.Active() {
			c.Next()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyScopes, claims.Scopes)
		c.Set(constants.ContextKeySuperuser, u.Superuser())

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ActorID returns the authenticated principal's ID, zero when anonymous.
func ActorID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
