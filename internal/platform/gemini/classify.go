package gemini

import (
	"errors"

	"google.golang.org/genai"
)

// errorClass tags an upstream fault as retriable or not.
type errorClass int

const (
	// classTransient marks server-side faults expected to resolve on retry.
	classTransient errorClass = iota

	// classPermanent marks faults that will not resolve on retry: auth,
	// malformed requests, content policy.
	classPermanent
)

// classifyUpstreamError decides whether an error from the Gemini call is
// worth retrying. Server-side faults (HTTP 5xx, INTERNAL/UNAVAILABLE status)
// are transient. Client-side API errors are permanent. Transport errors that
// never produced an API error (connection reset, timeout) are treated as
// transient: from the caller's seat they are indistinguishable from a
// server-side fault.
func classifyUpstreamError(err error) errorClass {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code >= 500 {
			return classTransient
		}
		switch apiErr.Status {
		case "INTERNAL", "UNAVAILABLE":
			return classTransient
		}
		return classPermanent
	}

	return classTransient
}
