package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vendra/internal/domain/permission"
	"vendra/internal/domain/role"
	"vendra/internal/domain/user"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// ScopeMiddleware authorizes requests against required scopes or role
// types. Superusers bypass every check; everyone else must carry the
// scope in their token, hold it through their role in the policy
// store, or hold an accepted role type. Roles are always resolved
// fresh from storage, never from token claims.
type ScopeMiddleware struct {
	enforcer    permission.Enforcer
	userRepo    user.Repository
	resolveRole func(ctx *gin.Context, userID uint) (*role.Role, error)
	logger      logger.Interface
}

func NewScopeMiddleware(enforcer permission.Enforcer, userRepo user.Repository, roleResolver func(ctx *gin.Context, userID uint) (*role.Role, error), log logger.Interface) *ScopeMiddleware {
	return &ScopeMiddleware{
		enforcer:    enforcer,
		userRepo:    userRepo,
		resolveRole: roleResolver,
		logger:      log,
	}
}

// RequireScope gates a route on one "resource:action" scope.
func (m *ScopeMiddleware) RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSuperuser(c) {
			c.Next()
			return
		}

		if hasTokenScope(c, scope) {
			c.Next()
			return
		}

		userID := ActorID(c)
		if r := m.actorRole(c, userID); r != nil {
			allowed, err := m.enforcer.EnforceScope(r.Code(), scope)
			if err == nil && allowed {
				c.Next()
				return
			}
		}

		m.logger.Warnw("scope denied", "user_id", userID, "scope", scope)
		utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
		c.Abort()
	}
}

// RequireRole gates a route on the actor's role type. The type is read
// through the repository on every request, so a role reassignment
// takes effect before the access token expires.
func (m *ScopeMiddleware) RequireRole(acceptedRoleTypes ...string) gin.HandlerFunc {
	accepted := make(map[string]bool, len(acceptedRoleTypes))
	for _, rt := range acceptedRoleTypes {
		accepted[rt] = true
	}

	return func(c *gin.Context) {
		if isSuperuser(c) {
			c.Next()
			return
		}

		userID := ActorID(c)
		if r := m.actorRole(c, userID); r != nil && accepted[r.RoleType()] {
			c.Next()
			return
		}

		m.logger.Warnw("role type denied", "user_id", userID, "accepted", acceptedRoleTypes)
		utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
		c.Abort()
	}
}

// RequireSuperuser gates a route on the superuser flag alone.
func (m *ScopeMiddleware) RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isSuperuser(c) {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// actorRole resolves the actor's stored role. Anonymous requests and
// resolver failures both come back nil and deny.
func (m *ScopeMiddleware) actorRole(c *gin.Context, userID uint) *role.Role {
	if userID == 0 || m.resolveRole == nil {
		return nil
	}
	r, err := m.resolveRole(c, userID)
	if err != nil {
		m.logger.Warnw("failed to resolve role", "user_id", userID, "error", err)
		return nil
	}
	return r
}

func isSuperuser(c *gin.Context) bool {
	v, ok := c.Get(constants.ContextKeySuperuser)
	if !ok {
		return false
	}
	super, ok := v.(bool)
	return ok && super
}

func hasTokenScope(c *gin.Context, scope string) bool {
	v, ok := c.Get(constants.ContextKeyScopes)
	if !ok {
		return false
	}
	scopes, ok := v.([]string)
	if !ok {
		return false
	}
	for _, s := range scopes {
		if s == scope {
			return true
		}
	}
	return false
}
