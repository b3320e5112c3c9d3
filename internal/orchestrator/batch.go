package orchestrator

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/phrazzld/collage-api/internal/domain"
	"github.com/phrazzld/collage-api/internal/events"
	"github.com/phrazzld/collage-api/internal/generation"
)

// Batch is a fixed-size collection of generation slots sharing one request.
// All slot state lives behind the mutex; goroutines launched by Start and
// Regenerate are the only writers, one per slot index at a time.
type Batch struct {
	id        uuid.UUID
	request   domain.GenerationRequest
	generator generation.Generator
	emitter   events.EventEmitter
	logger    *slog.Logger

	mu      sync.Mutex
	slots   []domain.SlotResult
	started bool

	// notify is closed and replaced whenever any slot changes state, waking
	// every AwaitAll waiter to re-check the batch.
	notify chan struct{}
}

// NewBatch creates a batch of count pending slots for the given request.
// The request must already be validated; count must be at least 1.
func NewBatch(
	id uuid.UUID,
	count int,
	request domain.GenerationRequest,
	generator generation.Generator,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (*Batch, error) {
	if count < 1 {
		return nil, ErrInvalidSlotCount
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}

	slots := make([]domain.SlotResult, count)
	for i := range slots {
		slots[i] = domain.SlotResult{Status: domain.SlotStatusPending}
	}

	return &Batch{
		id:        id,
		request:   request,
		generator: generator,
		emitter:   emitter,
		logger:    logger.With("collage_id", id),
		slots:     slots,
		notify:    make(chan struct{}),
	}, nil
}

// ID returns the batch identifier.
func (b *Batch) ID() uuid.UUID {
	return b.id
}

// Size returns the number of slots in the batch.
func (b *Batch) Size() int {
	return len(b.slots)
}

// Start launches one generation goroutine per slot and returns immediately.
// Calling Start a second time is an error.
func (b *Batch) Start(ctx context.Context) error {
	b.mu.Lock()
	if b.started {
		b.mu.Unlock()
		return ErrAlreadyStarted
	}
	b.started = true
	count := len(b.slots)
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "starting batch generation", "slot_count", count)
	for i := 0; i < count; i++ {
		go b.runSlot(ctx, i)
	}
	return nil
}

// Regenerate resets one terminal slot to pending and launches a fresh
// generation for it. Returns ErrSlotInFlight while the slot's current
// generation is still pending.
func (b *Batch) Regenerate(ctx context.Context, index int) error {
	if index < 0 || index >= len(b.slots) {
		return ErrSlotIndexOutOfRange
	}

	b.mu.Lock()
	if !b.slots[index].Terminal() {
		b.mu.Unlock()
		return ErrSlotInFlight
	}
	b.slots[index] = domain.SlotResult{Status: domain.SlotStatusPending}
	b.wakeWaitersLocked()
	b.mu.Unlock()

	b.logger.InfoContext(ctx, "regenerating slot", "slot_index", index)
	go b.runSlot(ctx, index)
	return nil
}

// AwaitAll blocks until every slot is terminal or the context ends, and
// returns the final snapshot. A regeneration started while waiting extends
// the wait until that slot is terminal again.
func (b *Batch) AwaitAll(ctx context.Context) ([]domain.SlotResult, error) {
	for {
		b.mu.Lock()
		if b.allTerminalLocked() {
			snapshot := b.snapshotLocked()
			b.mu.Unlock()
			return snapshot, nil
		}
		notify := b.notify
		b.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-notify:
		}
	}
}

// Snapshot returns a copy of the current slot states.
func (b *Batch) Snapshot() []domain.SlotResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// DoneImages returns the images of all done slots keyed by slot index.
// Pending and errored slots are excluded.
func (b *Batch) DoneImages() map[int]domain.ImageAsset {
	b.mu.Lock()
	defer b.mu.Unlock()

	images := make(map[int]domain.ImageAsset)
	for i, slot := range b.slots {
		if slot.Status == domain.SlotStatusDone && slot.Image != nil {
			images[i] = *slot.Image
		}
	}
	return images
}

// runSlot performs one generation for the slot and records its outcome.
func (b *Batch) runSlot(ctx context.Context, index int) {
	image, err := b.generator.GenerateImage(ctx, b.request)

	var result domain.SlotResult
	if err != nil {
		result = domain.SlotResult{
			Status:  domain.SlotStatusError,
			Message: err.Error(),
		}
	} else {
		result = domain.SlotResult{
			Status: domain.SlotStatusDone,
			Image:  image,
		}
	}

	b.mu.Lock()
	b.slots[index] = result
	b.wakeWaitersLocked()
	b.mu.Unlock()

	if b.emitter != nil {
		if emitErr := b.emitter.EmitEvent(ctx, events.NewSlotCompletedEvent(b.id, index, result)); emitErr != nil {
			b.logger.WarnContext(ctx, "failed to emit slot completion event",
				"slot_index", index,
				"error", emitErr)
		}
	}
}

// wakeWaitersLocked signals every AwaitAll waiter. Caller must hold b.mu.
func (b *Batch) wakeWaitersLocked() {
	close(b.notify)
	b.notify = make(chan struct{})
}

// allTerminalLocked reports whether every slot is terminal. Caller must hold b.mu.
func (b *Batch) allTerminalLocked() bool {
	for _, slot := range b.slots {
		if !slot.Terminal() {
			return false
		}
	}
	return true
}

// snapshotLocked copies the slot slice. Caller must hold b.mu.
func (b *Batch) snapshotLocked() []domain.SlotResult {
	snapshot := make([]domain.SlotResult, len(b.slots))
	copy(snapshot, b.slots)
	return snapshot
}
