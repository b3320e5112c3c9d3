package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/collage-api/internal/api/shared"
	"github.com/phrazzld/collage-api/internal/domain"
	"github.com/phrazzld/collage-api/internal/generation"
	"github.com/phrazzld/collage-api/internal/orchestrator"
	"github.com/phrazzld/collage-api/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrCollageNotFound),
		errors.Is(err, orchestrator.ErrSlotIndexOutOfRange):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, orchestrator.ErrSlotInFlight):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidEncoding),
		errors.Is(err, domain.ErrNoSubjectImages),
		errors.Is(err, domain.ErrNoStyleImages),
		errors.Is(err, generation.ErrInvalidRequest),
		errors.Is(err, orchestrator.ErrInvalidSlotCount),
		errors.Is(err, service.ErrTooManySlots),
		errors.Is(err, service.ErrTooManyReferenceImages),
		errors.Is(err, service.ErrImageTooLarge):
		return http.StatusBadRequest

	// Upstream faults surface as bad gateway; the client can retry or
	// regenerate the affected slot.
	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrPermanentFailure),
		errors.Is(err, generation.ErrTextOnlyResponse),
		errors.Is(err, generation.ErrContentBlocked):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrCollageNotFound):
		return "Collage not found"

	case errors.Is(err, orchestrator.ErrSlotIndexOutOfRange):
		return "Slot not found"

	case errors.Is(err, orchestrator.ErrSlotInFlight):
		return "Slot generation is still in progress"

	case errors.Is(err, domain.ErrInvalidEncoding):
		return "One or more images are not valid base64 data URLs"

	case errors.Is(err, domain.ErrNoSubjectImages):
		return "At least one subject image is required"

	case errors.Is(err, domain.ErrNoStyleImages):
		return "At least one style image is required"

	case errors.Is(err, orchestrator.ErrInvalidSlotCount),
		errors.Is(err, service.ErrTooManySlots):
		return "Invalid slot count"

	case errors.Is(err, service.ErrTooManyReferenceImages):
		return "Too many reference images"

	case errors.Is(err, service.ErrImageTooLarge):
		return "Reference image exceeds the size limit"

	case errors.Is(err, generation.ErrContentBlocked):
		return "Generation was blocked by content policy"

	case errors.Is(err, generation.ErrTextOnlyResponse):
		return "The model returned text instead of an image"

	case errors.Is(err, generation.ErrTransientFailure),
		errors.Is(err, generation.ErrPermanentFailure):
		return "Image generation failed"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validation error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'StartCollageRequest.Count' Error:Field validation for 'Count' failed on the 'min' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too few"
	case "max":
		return "too many"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes an error response using the standard mapping. An
// empty userMessage falls back to the safe message for the error type.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	if userMessage == "" {
		userMessage = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, userMessage, err)
}
