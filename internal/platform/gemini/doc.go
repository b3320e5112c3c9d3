// Package gemini provides an implementation of the generation.Generator
// interface that uses Google's Gemini API to render collage images from
// subject and style reference photos.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the application's domain logic to Google's external Gemini
// service. It translates between the application's domain models and the
// Gemini API without exposing the details of the external service to the
// core application.
//
// Key components:
//
// 1. Request encoding:
//   - Converts ImageAssets into inline-data parts, subjects before styles
//   - Composes the fixed task instruction with the user's free-text
//     instruction into a trailing text part
//
// 2. Error classification:
//   - Maps upstream faults to a transient/permanent tag via an explicit
//     classifier over the API error code and status
//
// 3. Retry handling:
//   - Bounded attempts with exponential backoff for transient faults only
//
// 4. Response extraction:
//   - Scans response parts for the first inline image; a text-only answer
//     is a permanent failure carrying the text for diagnostics
package gemini
