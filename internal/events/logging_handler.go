package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/collage-api/internal/domain"
)

// LoggingHandler records every slot completion in the structured log. It is
// the default observer wired by the application.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler writing through the given logger.
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger.With("component", "slot_completion_log")}
}

// HandleEvent logs the completion at a level matching its outcome.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *SlotCompletedEvent) error {
	attrs := []any{
		"collage_id", event.CollageID,
		"slot_index", event.SlotIndex,
		"status", event.Status,
	}
	if event.Status == domain.SlotStatusError {
		attrs = append(attrs, "message", event.Message)
		h.logger.WarnContext(ctx, "slot generation failed", attrs...)
		return nil
	}
	h.logger.InfoContext(ctx, "slot generation completed", attrs...)
	return nil
}
