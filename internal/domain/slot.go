package domain

// SlotStatus represents the lifecycle state of one generation slot.
type SlotStatus string

// Possible slot status values. A slot transitions pending -> done or
// pending -> error, and only moves backward (done|error -> pending) through an
// explicit regeneration.
const (
	SlotStatusPending SlotStatus = "pending"
	SlotStatusDone    SlotStatus = "done"
	SlotStatusError   SlotStatus = "error"
)

// SlotResult is the tagged outcome of one generation slot. Exactly one
// interpretation holds at a time: a pending slot carries neither image nor
// message, a done slot carries an image, an errored slot carries a
// human-readable message.
type SlotResult struct {
	Status  SlotStatus  `json:"status"`
	Image   *ImageAsset `json:"image,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Terminal reports whether the slot has reached a final state for the current
// generation round.
func (r SlotResult) Terminal() bool {
	return r.Status == SlotStatusDone || r.Status == SlotStatusError
}

// Validate checks that the result is internally consistent: a recognized
// status, an image if and only if the slot is done, and a message only when
// the slot errored.
func (r SlotResult) Validate() error {
	if !isValidSlotStatus(r.Status) {
		return ErrInvalidSlotStatus
	}
	if (r.Status == SlotStatusDone) != (r.Image != nil) {
		return ErrInvalidSlotResult
	}
	if r.Status != SlotStatusError && r.Message != "" {
		return ErrInvalidSlotResult
	}
	return nil
}

// isValidSlotStatus checks if the given status is a valid SlotStatus.
func isValidSlotStatus(status SlotStatus) bool {
	switch status {
	case SlotStatusPending, SlotStatusDone, SlotStatusError:
		return true
	default:
		return false
	}
}
