// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or stored in slot error messages. Upstream
// API errors can echo request URLs, API keys, and local file paths; this
// package scrubs them so a failed slot never leaks credentials to the browser
// or to the logs.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

// Precompiled regex patterns
var (
	// API keys and tokens in key=value or key: value form
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Gemini-style key query parameters in echoed request URLs
	urlKeyParamRegex = regexp.MustCompile(`(?i)([?&]key=)[A-Za-z0-9_\-]+`)

	// Passwords and credentials
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`)

	// File paths (prompt template locations, temp files)
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Hostnames with optional ports in transport errors
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	// All patterns and their placeholders, applied in order
	patterns = []*regexp.Regexp{
		urlKeyParamRegex, apiKeyRegex, passwordRegex, unixPathRegex, winPathRegex, hostPortRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		urlKeyParamRegex: "$1" + RedactedKeyPlaceholder,
		apiKeyRegex:      RedactedKeyPlaceholder,
		passwordRegex:    RedactedCredentialPlaceholder,
		unixPathRegex:    RedactedPathPlaceholder,
		winPathRegex:     RedactedPathPlaceholder,
		hostPortRegex:    RedactedHostPlaceholder,
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		placeholder := RedactionPlaceholder
		if ph, ok := patternPlaceholders[pattern]; ok {
			placeholder = ph
		}
		result = pattern.ReplaceAllString(result, placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
