package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/collage-api/internal/domain"
)

// SlotCompletedEvent records one slot of a collage batch reaching a terminal
// state, either successfully or with an error. The image payload itself is
// deliberately absent; observers that need it read the batch snapshot.
type SlotCompletedEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// CollageID identifies the batch the slot belongs to
	CollageID uuid.UUID `json:"collage_id"`

	// SlotIndex is the zero-based position of the slot within the batch
	SlotIndex int `json:"slot_index"`

	// Status is the terminal status the slot reached (done or error)
	Status domain.SlotStatus `json:"status"`

	// Message carries the sanitized failure description for errored slots
	Message string `json:"message,omitempty"`

	// CompletedAt is the timestamp when the slot completed
	CompletedAt time.Time `json:"completed_at"`
}

// NewSlotCompletedEvent creates a completion event for the given slot.
func NewSlotCompletedEvent(collageID uuid.UUID, slotIndex int, result domain.SlotResult) *SlotCompletedEvent {
	return &SlotCompletedEvent{
		ID:          uuid.New(),
		CollageID:   collageID,
		SlotIndex:   slotIndex,
		Status:      result.Status,
		Message:     result.Message,
		CompletedAt: time.Now(),
	}
}

// EventHandler defines an interface for components that can handle events.
// Handlers are responsible for processing events and taking appropriate actions.
type EventHandler interface {
	// HandleEvent processes the given event within the provided context.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(ctx context.Context, event *SlotCompletedEvent) error
}

// EventEmitter defines an interface for components that can emit events.
// This allows the orchestrator to publish events without direct knowledge of handlers.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	// Returns an error if the event cannot be emitted.
	EmitEvent(ctx context.Context, event *SlotCompletedEvent) error
}
