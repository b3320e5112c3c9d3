package redact_test

import (
	"errors"
	"testing"

	"github.com/phrazzld/collage-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "model returned no candidates",
			expected: "model returned no candidates",
		},
		{
			name:     "API key parameter",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using [REDACTED_KEY] for authentication",
		},
		{
			name:     "key query parameter in echoed URL",
			input:    "POST failed: ?key=AIzaSyB0gus-key-material",
			expected: "POST failed: ?key=[REDACTED_KEY]",
		},
		{
			name:     "password parameter",
			input:    "Request failed with password=secret123 in payload",
			expected: "Request failed with [REDACTED_CREDENTIAL] in payload",
		},
		{
			name:     "unix file path",
			input:    "open /etc/collage/secrets.yaml: permission denied",
			expected: "open [REDACTED_PATH]: permission denied",
		},
		{
			name:     "hostname with port",
			input:    "dial tcp: lookup generativelanguage.googleapis.com:443 failed",
			expected: "dial tcp: lookup [REDACTED_HOST] failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := errors.New("gemini status 403: key=AIzaSyFakeKeyMaterial rejected")
	got := redact.Error(err)
	assert.NotContains(t, got, "AIzaSyFakeKeyMaterial")
}
