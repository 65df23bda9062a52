package utils

import "testing"

func TestIsSensitiveField(t *testing.T) {
	tests := []struct {
		field string
		want  bool
	}{
		{"password", true},
		{"PASSWORD", true},
		{"Refresh_Token", true},
		{"api_key", true},
		{"authorization", true},
		{"name", false},
		{"description", false},
		{"code", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := IsSensitiveField(tt.field); got != tt.want {
				t.Errorf("IsSensitiveField(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestObfuscateValue(t *testing.T) {
	if got := ObfuscateValue("hunter2"); got != "***" {
		t.Errorf("ObfuscateValue() = %q, want %q", got, "***")
	}
	if got := ObfuscateValue(""); got != "***" {
		t.Errorf("ObfuscateValue() hides length for empty values too, got %q", got)
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"normal address", "user@example.com", "u***@example.com"},
		{"single char local part", "u@example.com", "u***@example.com"},
		{"not an email", "plainstring", "***"},
		{"empty", "", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskEmail(tt.email); got != tt.want {
				t.Errorf("MaskEmail(%q) = %q, want %q", tt.email, got, tt.want)
			}
		})
	}
}
