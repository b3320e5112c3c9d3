package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrInvalidRequest is returned when the generation request fails
	// validation before any upstream call is made.
	ErrInvalidRequest = errors.New("invalid generation request")

	// ErrTransientFailure is returned when the upstream reports a
	// server-side fault that might resolve on retry, after the retry budget
	// is exhausted.
	ErrTransientFailure = errors.New("transient error during image generation")

	// ErrPermanentFailure is returned for upstream faults that will not
	// resolve on retry (auth, malformed request, policy).
	ErrPermanentFailure = errors.New("permanent error during image generation")

	// ErrContentBlocked is returned when the model blocks the request due to
	// safety filters. Not retried.
	ErrContentBlocked = errors.New("content blocked by model safety filters")

	// ErrTextOnlyResponse is returned when the model answers with text but
	// no image data. Treated as permanent: the model declined rather than
	// failed.
	ErrTextOnlyResponse = errors.New("model returned text instead of an image")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
