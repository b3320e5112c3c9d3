// Package service provides the application-level collage service: an
// in-memory registry of generation batches keyed by collage ID, with
// operations to start, inspect, regenerate, reset, and lay out a collage.
package service
