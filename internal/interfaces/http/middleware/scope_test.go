package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendra/internal/domain/role"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
)

type principal struct {
	userID    uint
	scopes    []string
	superuser bool
}

// seedPrincipal stands in for RequireAuth in these tests.
func seedPrincipal(p principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p.userID != 0 {
			c.Set(constants.ContextKeyUserID, p.userID)
			c.Set(constants.ContextKeyScopes, p.scopes)
			c.Set(constants.ContextKeySuperuser, p.superuser)
		}
		c.Next()
	}
}

func storedRole(t *testing.T, code, roleType string) *role.Role {
	t.Helper()
	r, err := role.ReconstructRole(1, code, code, roleType, nil, false, true, testTime(), testTime())
	require.NoError(t, err)
	return r
}

// fixedRoleResolver answers the same role for every actor.
func fixedRoleResolver(r *role.Role) func(ctx *gin.Context, userID uint) (*role.Role, error) {
	return func(ctx *gin.Context, userID uint) (*role.Role, error) {
		return r, nil
	}
}

func newScopeTestRouter(m *ScopeMiddleware, p principal, scope string) *gin.Engine {
	router := gin.New()
	router.GET("/guarded", seedPrincipal(p), m.RequireScope(scope), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/managed", seedPrincipal(p), m.RequireRole("admin", "manager"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/admin", seedPrincipal(p), m.RequireSuperuser(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func scopeRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRequireScope_SuperuserBypassesEverything(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 1, superuser: true}, "brand:delete")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireScope_TokenScopeGrantsAccess(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 2, scopes: []string{"brand:read", "brand:write"}}, "brand:write")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireScope_RolePolicyGrantsAccess(t *testing.T) {
	enforcer := &mockEnforcer{
		EnforceScopeFunc: func(roleCode, scope string) (bool, error) {
			return roleCode == "manager" && scope == "brand:write", nil
		},
	}
	resolver := fixedRoleResolver(storedRole(t, "manager", "staff"))
	m := NewScopeMiddleware(enforcer, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 3}, "brand:write")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireScope_DeniedWithoutScopeOrPolicy(t *testing.T) {
	resolver := fixedRoleResolver(storedRole(t, "clerk", "staff"))
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 4, scopes: []string{"brand:read"}}, "brand:delete")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireScope_AnonymousDenied(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())
	router := newScopeTestRouter(m, principal{}, "brand:read")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireScope_ResolverFailureDenies(t *testing.T) {
	resolver := func(ctx *gin.Context, userID uint) (*role.Role, error) {
		return nil, assert.AnError
	}
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 5}, "brand:read")

	w := scopeRequest(router, "/guarded")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_AcceptedTypePasses(t *testing.T) {
	resolver := fixedRoleResolver(storedRole(t, "store-manager", "manager"))
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 6}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_SuperuserBypasses(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 7, superuser: true}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WrongTypeDenied(t *testing.T) {
	resolver := fixedRoleResolver(storedRole(t, "clerk", "staff"))
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 8}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_TokenScopesDoNotSubstitute(t *testing.T) {
	resolver := fixedRoleResolver(nil)
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 9, scopes: []string{"documents:write"}}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusForbidden, w.Code, "role type comes from the store, not token claims")
}

func TestRequireRole_AnonymousDenied(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())
	router := newScopeTestRouter(m, principal{}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_ResolverFailureDenies(t *testing.T) {
	resolver := func(ctx *gin.Context, userID uint) (*role.Role, error) {
		return nil, assert.AnError
	}
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, resolver, logger.NewLogger())
	router := newScopeTestRouter(m, principal{userID: 10}, "")

	w := scopeRequest(router, "/managed")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireSuperuser(t *testing.T) {
	m := NewScopeMiddleware(&mockEnforcer{}, &mockUserRepository{}, nil, logger.NewLogger())

	w := scopeRequest(newScopeTestRouter(m, principal{userID: 1, superuser: true}, ""), "/admin")
	assert.Equal(t, http.StatusOK, w.Code)

	w = scopeRequest(newScopeTestRouter(m, principal{userID: 2, scopes: []string{"users:write"}}, ""), "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code, "scopes never substitute for the superuser flag")

	w = scopeRequest(newScopeTestRouter(m, principal{}, ""), "/admin")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
