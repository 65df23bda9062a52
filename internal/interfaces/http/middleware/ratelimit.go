package middleware

import (
	"github.com/gin-gonic/gin"

	"vendra/internal/infrastructure/ratelimit"
	"vendra/internal/shared/constants"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// RateLimitMiddleware applies the per-client limiter before any other
// processing. Rejections use a plain {"detail": ...} body so that
// clients can distinguish throttling from application errors.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  logger.Interface
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, log logger.Interface) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  log,
	}
}

// Limit keys requests by client IP.
func (m *RateLimitMiddleware) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, err := m.limiter.Allow(key)
		if err != nil {
			// Limiter backend failure must not take the API down.
			m.logger.Errorw("rate limiter failure, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			m.logger.Warnw("request rate limited", "ip", key)
			utils.RateLimitedResponse(c, constants.ErrMsgRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
