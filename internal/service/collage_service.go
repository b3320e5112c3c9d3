package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/phrazzld/collage-api/internal/config"
	"github.com/phrazzld/collage-api/internal/domain"
	"github.com/phrazzld/collage-api/internal/events"
	"github.com/phrazzld/collage-api/internal/generation"
	"github.com/phrazzld/collage-api/internal/orchestrator"
)

// CollageService provides collage-related operations over an in-memory
// batch registry. All state is process-local; a restart loses every batch.
type CollageService interface {
	// StartGeneration creates a batch of count slots for the request and
	// launches generation for all of them. Returns the new batch ID and the
	// initial (all pending) snapshot.
	StartGeneration(ctx context.Context, req domain.GenerationRequest, count int) (uuid.UUID, []domain.SlotResult, error)

	// GetCollage returns the current slot snapshot of a batch.
	GetCollage(ctx context.Context, id uuid.UUID) ([]domain.SlotResult, error)

	// RegenerateSlot relaunches generation for one terminal slot.
	RegenerateSlot(ctx context.Context, id uuid.UUID, index int) error

	// ResetCollage discards a batch entirely. In-flight generations finish
	// against the discarded batch and are never observed again.
	ResetCollage(ctx context.Context, id uuid.UUID) error

	// Layout returns the done slots of a batch as a label to image mapping,
	// the input the collage renderer consumes. Pending and errored slots are
	// excluded.
	Layout(ctx context.Context, id uuid.UUID) (map[string]domain.ImageAsset, error)

	// Await blocks until every slot of the batch is terminal and returns the
	// final snapshot.
	Await(ctx context.Context, id uuid.UUID) ([]domain.SlotResult, error)
}

// collageServiceImpl implements the CollageService interface.
type collageServiceImpl struct {
	generator generation.Generator
	emitter   events.EventEmitter
	cfg       config.CollageConfig
	logger    *slog.Logger

	mu      sync.RWMutex
	batches map[uuid.UUID]*orchestrator.Batch
}

// NewCollageService creates a new CollageService.
// It returns an error if any of the required dependencies are nil.
func NewCollageService(
	generator generation.Generator,
	emitter events.EventEmitter,
	cfg config.CollageConfig,
	logger *slog.Logger,
) (CollageService, error) {
	if generator == nil {
		return nil, fmt.Errorf("generator cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &collageServiceImpl{
		generator: generator,
		emitter:   emitter,
		cfg:       cfg,
		logger:    logger.With(slog.String("component", "collage_service")),
		batches:   make(map[uuid.UUID]*orchestrator.Batch),
	}, nil
}

// StartGeneration implements CollageService.StartGeneration.
func (s *collageServiceImpl) StartGeneration(
	ctx context.Context,
	req domain.GenerationRequest,
	count int,
) (uuid.UUID, []domain.SlotResult, error) {
	if count > s.cfg.MaxSlots {
		return uuid.Nil, nil, fmt.Errorf("%w: %d requested, %d allowed", ErrTooManySlots, count, s.cfg.MaxSlots)
	}
	if err := s.checkReferenceLimits(req); err != nil {
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	batch, err := orchestrator.NewBatch(id, count, req, s.generator, s.emitter, s.logger)
	if err != nil {
		return uuid.Nil, nil, err
	}

	s.mu.Lock()
	s.batches[id] = batch
	s.mu.Unlock()

	// Generation goroutines must outlive the HTTP request that started them;
	// they run against the background context and are observed through polling.
	if err := batch.Start(context.WithoutCancel(ctx)); err != nil {
		return uuid.Nil, nil, NewCollageServiceError("start_generation", "failed to start batch", err)
	}

	s.logger.InfoContext(ctx, "collage generation started",
		slog.String("collage_id", id.String()),
		slog.Int("slot_count", count),
		slog.Int("subject_count", len(req.Subjects)),
		slog.Int("style_count", len(req.Styles)))

	return id, batch.Snapshot(), nil
}

// GetCollage implements CollageService.GetCollage.
func (s *collageServiceImpl) GetCollage(_ context.Context, id uuid.UUID) ([]domain.SlotResult, error) {
	batch, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return batch.Snapshot(), nil
}

// RegenerateSlot implements CollageService.RegenerateSlot.
func (s *collageServiceImpl) RegenerateSlot(ctx context.Context, id uuid.UUID, index int) error {
	batch, err := s.lookup(id)
	if err != nil {
		return err
	}
	return batch.Regenerate(context.WithoutCancel(ctx), index)
}

// ResetCollage implements CollageService.ResetCollage.
func (s *collageServiceImpl) ResetCollage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	_, ok := s.batches[id]
	delete(s.batches, id)
	s.mu.Unlock()

	if !ok {
		return ErrCollageNotFound
	}

	s.logger.InfoContext(ctx, "collage reset", slog.String("collage_id", id.String()))
	return nil
}

// Layout implements CollageService.Layout.
func (s *collageServiceImpl) Layout(_ context.Context, id uuid.UUID) (map[string]domain.ImageAsset, error) {
	batch, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	return lo.MapEntries(batch.DoneImages(), func(index int, image domain.ImageAsset) (string, domain.ImageAsset) {
		return fmt.Sprintf("slot-%d", index), image
	}), nil
}

// Await implements CollageService.Await.
func (s *collageServiceImpl) Await(ctx context.Context, id uuid.UUID) ([]domain.SlotResult, error) {
	batch, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	return batch.AwaitAll(ctx)
}

// lookup finds a batch by ID under the read lock.
func (s *collageServiceImpl) lookup(id uuid.UUID) (*orchestrator.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, ok := s.batches[id]
	if !ok {
		return nil, ErrCollageNotFound
	}
	return batch, nil
}

// checkReferenceLimits enforces the configured caps on reference image count
// and payload size.
func (s *collageServiceImpl) checkReferenceLimits(req domain.GenerationRequest) error {
	if len(req.Subjects) > s.cfg.MaxReferenceImages || len(req.Styles) > s.cfg.MaxReferenceImages {
		return fmt.Errorf("%w: at most %d per kind", ErrTooManyReferenceImages, s.cfg.MaxReferenceImages)
	}

	all := append(append([]domain.ImageAsset{}, req.Subjects...), req.Styles...)
	if oversized, found := lo.Find(all, func(a domain.ImageAsset) bool {
		return len(a.Data) > s.cfg.MaxImageBytes
	}); found {
		return fmt.Errorf("%w: %s payload is %d bytes, limit %d",
			ErrImageTooLarge, oversized.MediaType, len(oversized.Data), s.cfg.MaxImageBytes)
	}
	return nil
}
