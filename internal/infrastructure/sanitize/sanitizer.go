// Package sanitize provides request payload cleaning and the stricter
// input validation the catalog engine applies before writes.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"vendra/internal/shared/constants"
	"vendra/internal/shared/errors"
	"vendra/internal/shared/utils"
)

// DefaultFieldLimits caps well-known fields. The table is extended or
// overridden from configuration.
var DefaultFieldLimits = map[string]int{
	"code":        10,
	"name":        100,
	"description": 500,
	"email":       254,
	"search":      100,
}

// DefaultLimit caps any field without an explicit entry.
const DefaultLimit = 1000

var (
	scriptTagPattern = regexp.MustCompile(`(?is)<\s*script[^>]*>.*?<\s*/\s*script\s*>`)
	openScriptTag    = regexp.MustCompile(`(?i)<\s*script[^>]*>`)
	eventAttrPattern = regexp.MustCompile(`(?i)\bon\w+\s*=`)
	uriSchemePattern = regexp.MustCompile(`(?i)\b(?:javascript|vbscript)\s*:`)

	// Rejection patterns for the strict validator. Matches are refused
	// outright instead of stripped.
	sqlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bunion\b[\s(]+\bselect\b`),
		regexp.MustCompile(`(?i)\bselect\b.+\bfrom\b`),
		regexp.MustCompile(`(?i)\binsert\s+into\b`),
		regexp.MustCompile(`(?i)\bdelete\s+from\b`),
		regexp.MustCompile(`(?i)\bupdate\s+\w+\s+set\b`),
		regexp.MustCompile(`(?i)\bdrop\s+(?:table|database|index)\b`),
		regexp.MustCompile(`(?i)\btruncate\s+table\b`),
		regexp.MustCompile(`(?i)\bexec(?:ute)?\s*\(`),
		regexp.MustCompile(`--\s`),
		regexp.MustCompile(`/\*`),
		regexp.MustCompile(`(?i)['"]?\s*\bor\b\s+['"]?\d+['"]?\s*=\s*['"]?\d+`),
		regexp.MustCompile(`(?i)['"]\s*\bor\b\s+['"][^'"]*['"]\s*=\s*['"]`),
	}
)

// Sanitizer cleans untrusted payload strings. Cleaning is idempotent:
// re-sanitizing already-sanitized text is a no-op.
type Sanitizer struct {
	policy *bluemonday.Policy
	limits map[string]int
}

// New creates a sanitizer. The limits map overrides DefaultFieldLimits
// per field name; pass nil to use the defaults unchanged.
func New(limits map[string]int) *Sanitizer {
	merged := make(map[string]int, len(DefaultFieldLimits)+len(limits))
	for k, v := range DefaultFieldLimits {
		merged[k] = v
	}
	for k, v := range limits {
		merged[k] = v
	}
	return &Sanitizer{
		policy: bluemonday.StrictPolicy(),
		limits: merged,
	}
}

// Limit returns the cap for a field.
func (s *Sanitizer) Limit(field string) int {
	if l, ok := s.limits[strings.ToLower(field)]; ok {
		return l
	}
	return DefaultLimit
}

// CleanString strips script content and escapes markup from one field
// value, then truncates to the field cap. Sensitive fields are passed
// through untouched; they are never treated as free text.
func (s *Sanitizer) CleanString(field, value string) string {
	if utils.IsSensitiveField(field) {
		return value
	}

	cleaned := scriptTagPattern.ReplaceAllString(value, "")
	cleaned = openScriptTag.ReplaceAllString(cleaned, "")
	cleaned = eventAttrPattern.ReplaceAllString(cleaned, "")
	cleaned = uriSchemePattern.ReplaceAllString(cleaned, "")
	cleaned = s.policy.Sanitize(cleaned)
	cleaned = strings.TrimSpace(cleaned)

	if limit := s.Limit(field); len(cleaned) > limit {
		cleaned = cleaned[:limit]
	}
	return cleaned
}

// CleanPayload deep-walks a decoded JSON payload, cleaning every
// string in place. Objects and arrays are rebuilt; other scalars pass
// through.
func (s *Sanitizer) CleanPayload(payload interface{}) interface{} {
	return s.cleanValue("", payload)
}

func (s *Sanitizer) cleanValue(field string, v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return s.CleanString(field, val)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = s.cleanValue(k, item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.cleanValue(field, item)
		}
		return out
	default:
		return v
	}
}

// Validate is the engine-level check: unlike CleanString it rejects
// suspicious input instead of stripping it. The returned error carries
// a generic message only; the offending pattern is never echoed back.
func (s *Sanitizer) Validate(field, value string) error {
	if limit := s.Limit(field); len(value) > limit {
		return errors.NewValidationError(constants.ErrMsgInvalidInput, field+" exceeds maximum length")
	}
	for _, p := range sqlPatterns {
		if p.MatchString(value) {
			return errors.NewValidationError(constants.ErrMsgInvalidInput)
		}
	}
	if scriptTagPattern.MatchString(value) || openScriptTag.MatchString(value) ||
		eventAttrPattern.MatchString(value) || uriSchemePattern.MatchString(value) {
		return errors.NewValidationError(constants.ErrMsgInvalidInput)
	}
	return nil
}

// ValidateFields runs Validate over a field -> value map and returns
// the first failure.
func (s *Sanitizer) ValidateFields(fields map[string]string) error {
	for field, value := range fields {
		if err := s.Validate(field, value); err != nil {
			return err
		}
	}
	return nil
}
