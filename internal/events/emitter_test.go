package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/collage-api/internal/domain"
)

func testEvent() *SlotCompletedEvent {
	return NewSlotCompletedEvent(uuid.New(), 1, domain.SlotResult{
		Status: domain.SlotStatusDone,
		Image:  &domain.ImageAsset{MediaType: "image/png", Data: []byte("img")},
	})
}

func TestInMemoryEventEmitter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("emit event with no handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)
		err := emitter.EmitEvent(context.Background(), testEvent())
		assert.NoError(t, err)
	})

	t.Run("emit event with successful handlers", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		handler1 := &MockEventHandler{}
		handler2 := &MockEventHandler{}
		emitter.RegisterHandler(handler1)
		emitter.RegisterHandler(handler2)

		event := testEvent()
		err := emitter.EmitEvent(context.Background(), event)
		assert.NoError(t, err)

		assert.Equal(t, 1, handler1.HandledCount)
		assert.Equal(t, 1, handler2.HandledCount)
		assert.Equal(t, event, handler1.LastEvent)
		assert.Equal(t, event, handler2.LastEvent)
	})

	t.Run("emit event with failing handler", func(t *testing.T) {
		emitter := NewInMemoryEventEmitter(logger)

		successHandler := &MockEventHandler{}
		failingHandler := &MockEventHandler{HandlerError: errors.New("handler error")}
		emitter.RegisterHandler(failingHandler)
		emitter.RegisterHandler(successHandler)

		err := emitter.EmitEvent(context.Background(), testEvent())
		assert.Error(t, err)

		// The failure of one handler must not starve the others.
		assert.Equal(t, 1, successHandler.HandledCount)
		assert.Equal(t, 1, failingHandler.HandledCount)
	})
}

func TestLoggingHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewLoggingHandler(logger)

	err := handler.HandleEvent(context.Background(), testEvent())
	assert.NoError(t, err)

	errored := NewSlotCompletedEvent(uuid.New(), 3, domain.SlotResult{
		Status:  domain.SlotStatusError,
		Message: "upstream unavailable",
	})
	err = handler.HandleEvent(context.Background(), errored)
	assert.NoError(t, err)
}
