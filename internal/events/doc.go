// Package events carries slot lifecycle notifications between the
// orchestration layer and interested observers.
//
// The orchestrator emits a SlotCompletedEvent whenever a slot reaches a
// terminal state. Handlers register with an EventEmitter and receive events
// synchronously; the application wires a logging handler so every completion
// lands in the structured log with its batch and slot identity.
package events
