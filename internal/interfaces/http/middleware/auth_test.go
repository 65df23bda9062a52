package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendra/internal/domain/user"
	"vendra/internal/infrastructure/auth"
	"vendra/internal/shared/logger"
)

func newAuthTestRouter(t *testing.T, repo *mockUserRepository) (*gin.Engine, *auth.JWTService) {
	t.Helper()

	jwtService := auth.NewJWTService("test-secret", 30, 7)
	m := NewAuthMiddleware(jwtService, repo, logger.NewLogger())

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorID(c)})
	})
	router.GET("/open", m.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actor": ActorID(c)})
	})
	return router, jwtService
}

func get(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_MissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t, &mockUserRepository{})

	w := get(router, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	router, _ := newAuthTestRouter(t, &mockUserRepository{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return activeUser(t, id, false), nil
		},
	}
	router, jwtService := newAuthTestRouter(t, repo)

	pair, err := jwtService.Generate(42, []string{"brand:read"})
	require.NoError(t, err)

	w := get(router, "/protected", pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":42`)
}

func TestRequireAuth_RefreshTokenRejected(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return activeUser(t, id, false), nil
		},
	}
	router, jwtService := newAuthTestRouter(t, repo)

	pair, err := jwtService.Generate(42, nil)
	require.NoError(t, err)

	w := get(router, "/protected", pair.RefreshToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RevokedToken(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return activeUser(t, id, false), nil
		},
	}
	router, jwtService := newAuthTestRouter(t, repo)

	pair, err := jwtService.Generate(42, nil)
	require.NoError(t, err)
	jwtService.Revoke(pair.AccessToken)

	w := get(router, "/protected", pair.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeactivatedUser(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return inactiveUser(t, id), nil
		},
	}
	router, jwtService := newAuthTestRouter(t, repo)

	pair, err := jwtService.Generate(42, nil)
	require.NoError(t, err)

	w := get(router, "/protected", pair.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "deactivation beats an otherwise valid token")
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, &mockUserRepository{})

	pair, err := jwtService.Generate(42, nil)
	require.NoError(t, err)

	w := get(router, "/protected", pair.AccessToken)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	router, _ := newAuthTestRouter(t, &mockUserRepository{})

	w := get(router, "/open", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":0`)
}

func TestOptionalAuth_InvalidTokenContinuesAnonymously(t *testing.T) {
	router, _ := newAuthTestRouter(t, &mockUserRepository{})

	w := get(router, "/open", "garbage")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":0`)
}

func TestOptionalAuth_ValidTokenResolvesActor(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return activeUser(t, id, false), nil
		},
	}
	router, jwtService := newAuthTestRouter(t, repo)

	pair, err := jwtService.Generate(7, nil)
	require.NoError(t, err)

	w := get(router, "/open", pair.AccessToken)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"actor":7`)
}
