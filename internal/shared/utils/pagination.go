package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"vendra/internal/shared/constants"
)

// PageWindow holds parsed skip/limit parameters.
type PageWindow struct {
	Skip  int
	Limit int
}

// ValidatePageWindow normalizes skip/limit values.
// Skip defaults to 0 when negative, limit defaults to DefaultLimit when
// non-positive and is capped at MaxLimit.
func ValidatePageWindow(skip, limit int) PageWindow {
	if skip < 0 {
		skip = constants.DefaultSkip
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}
	return PageWindow{Skip: skip, Limit: limit}
}

// ParsePageWindow parses skip/limit from the query string with defaults applied.
func ParsePageWindow(c *gin.Context) PageWindow {
	skip := parseQueryInt(c, "skip", constants.DefaultSkip)
	limit := parseQueryInt(c, "limit", constants.DefaultLimit)
	return ValidatePageWindow(skip, limit)
}

// parseQueryInt parses a non-negative integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 0 {
			return n
		}
	}
	return defaultVal
}
