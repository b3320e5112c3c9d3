package orchestrator

import "errors"

var (
	// ErrInvalidSlotCount indicates a batch was requested with a
	// non-positive slot count.
	ErrInvalidSlotCount = errors.New("slot count must be at least 1")

	// ErrSlotIndexOutOfRange indicates a slot index outside the batch.
	ErrSlotIndexOutOfRange = errors.New("slot index out of range")

	// ErrSlotInFlight indicates a regeneration was requested for a slot
	// whose current generation has not finished yet.
	ErrSlotInFlight = errors.New("slot generation still in flight")

	// ErrAlreadyStarted indicates Start was called twice on the same batch.
	ErrAlreadyStarted = errors.New("batch already started")
)
