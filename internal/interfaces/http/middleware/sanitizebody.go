package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"vendra/internal/infrastructure/sanitize"
	"vendra/internal/shared/logger"
	"vendra/internal/shared/utils"
)

// SanitizeMiddleware deep-cleans JSON request bodies before handlers
// bind them. Cleaning is lenient: markup is stripped and long values
// truncated, never rejected. The strict checks live in the use cases.
type SanitizeMiddleware struct {
	sanitizer *sanitize.Sanitizer
	maxBytes  int64
	logger    logger.Interface
}

func NewSanitizeMiddleware(sanitizer *sanitize.Sanitizer, maxBytes int64, log logger.Interface) *SanitizeMiddleware {
	return &SanitizeMiddleware{
		sanitizer: sanitizer,
		maxBytes:  maxBytes,
		logger:    log,
	}
}

// CleanJSONBody rewrites the request body with sanitized string values.
// Non-JSON bodies pass through untouched; multipart uploads are guarded
// separately.
func (m *SanitizeMiddleware) CleanJSONBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.ContentLength == 0 {
			c.Next()
			return
		}
		contentType := c.GetHeader("Content-Type")
		if !strings.Contains(contentType, "application/json") {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, m.maxBytes+1))
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "failed to read request body")
			c.Abort()
			return
		}
		if int64(len(body)) > m.maxBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "request body too large")
			c.Abort()
			return
		}

		var payload interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			// Let the handler produce the binding error.
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		cleaned := m.sanitizer.CleanPayload(payload)
		rewritten, err := json.Marshal(cleaned)
		if err != nil {
			m.logger.Errorw("failed to re-encode sanitized body", "error", err)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
			c.Next()
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(rewritten))
		c.Request.ContentLength = int64(len(rewritten))
		c.Next()
	}
}

// GuardUpload enforces size and content type limits on file uploads.
func (m *SanitizeMiddleware) GuardUpload(allowedContentTypes []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedContentTypes))
	for _, ct := range allowedContentTypes {
		allowed[strings.ToLower(ct)] = true
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > m.maxBytes {
			utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "upload too large")
			c.Abort()
			return
		}

		contentType := strings.ToLower(c.GetHeader("Content-Type"))
		if i := strings.Index(contentType, ";"); i >= 0 {
			contentType = strings.TrimSpace(contentType[:i])
		}
		if len(allowed) > 0 && !allowed[contentType] && !strings.HasPrefix(contentType, "multipart/form-data") {
			utils.ErrorResponse(c, http.StatusUnsupportedMediaType, "unsupported content type")
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, m.maxBytes)
		c.Next()
	}
}
