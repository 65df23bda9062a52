package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendra/internal/shared/logger"
)

func newRateLimitTestRouter(limiter *mockLimiter) *gin.Engine {
	m := NewRateLimitMiddleware(limiter, logger.NewLogger())
	router := gin.New()
	router.GET("/ping", m.Limit(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimit_AllowedRequestPasses(t *testing.T) {
	router := newRateLimitTestRouter(&mockLimiter{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_RejectionUsesDetailBody(t *testing.T) {
	limiter := &mockLimiter{
		AllowFunc: func(key string) (bool, error) { return false, nil },
	}
	router := newRateLimitTestRouter(limiter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "detail")
	assert.NotEmpty(t, body["detail"])
}

func TestRateLimit_BackendFailureAllowsRequest(t *testing.T) {
	limiter := &mockLimiter{
		AllowFunc: func(key string) (bool, error) { return false, assert.AnError },
	}
	router := newRateLimitTestRouter(limiter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code, "a broken limiter backend never takes the API down")
}

func TestRateLimit_KeyedByClientIP(t *testing.T) {
	var seenKey string
	limiter := &mockLimiter{
		AllowFunc: func(key string) (bool, error) {
			seenKey = key
			return true, nil
		},
	}
	router := newRateLimitTestRouter(limiter)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.9:51234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.9", seenKey)
}
