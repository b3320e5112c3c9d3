// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidEncoding is returned when an embedded image payload does not
	// match the expected data-URL format (malformed header, non-image media
	// type, or undecodable base64). This is often wrapped with a more
	// specific message.
	ErrInvalidEncoding = errors.New("invalid image encoding")

	// ErrNoSubjectImages is returned when a generation request carries no
	// subject photos.
	ErrNoSubjectImages = errors.New("at least one subject image is required")

	// ErrNoStyleImages is returned when a generation request carries no
	// style reference photos.
	ErrNoStyleImages = errors.New("at least one style image is required")

	// ErrInvalidSlotStatus is returned when a slot status is not recognized.
	ErrInvalidSlotStatus = errors.New("invalid slot status")

	// ErrInvalidSlotResult is returned when a slot result's payload does not
	// match its status tag.
	ErrInvalidSlotResult = errors.New("slot result inconsistent with status")
)
