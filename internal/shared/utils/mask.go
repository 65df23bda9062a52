package utils

import "strings"

// sensitiveFields are field names whose values must never be echoed
// into logs or audit descriptions as free text.
var sensitiveFields = map[string]bool{
	"password":      true,
	"passwd":        true,
	"secret":        true,
	"token":         true,
	"access_token":  true,
	"refresh_token": true,
	"api_key":       true,
	"authorization": true,
}

// IsSensitiveField reports whether a field name must be obfuscated
// before it appears in audit descriptions or log output.
func IsSensitiveField(name string) bool {
	return sensitiveFields[strings.ToLower(name)]
}

// ObfuscateValue replaces a sensitive value with a fixed marker.
// Length is deliberately hidden as well.
func ObfuscateValue(string) string {
	return "***"
}

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}
