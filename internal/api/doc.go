// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. It acts as an adapter between the browser client
// and the internal collage service, translating HTTP concerns to
// business operations.
package api
