package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/collage-api/internal/config"
	"github.com/phrazzld/collage-api/internal/events"
	"github.com/phrazzld/collage-api/internal/generation"
	"github.com/phrazzld/collage-api/internal/platform/gemini"
	"github.com/phrazzld/collage-api/internal/platform/logger"
	"github.com/phrazzld/collage-api/internal/service"
)

// application holds the initialized dependencies of the server.
type application struct {
	config         *config.Config
	logger         *slog.Logger
	generator      generation.Generator
	eventEmitter   events.EventEmitter
	collageService service.CollageService
}

// newApplication loads configuration and constructs every component of the
// server: logger, Gemini generator, event emitter with its logging handler,
// and the collage service.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_slots", cfg.Collage.MaxSlots)

	generator, err := gemini.NewGeminiGenerator(ctx, appLogger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(appLogger)
	emitter.RegisterHandler(events.NewLoggingHandler(appLogger))

	collageService, err := service.NewCollageService(generator, emitter, cfg.Collage, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create collage service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         appLogger,
		generator:      generator,
		eventEmitter:   emitter,
		collageService: collageService,
	}, nil
}

// cleanup releases application resources before shutdown. Batches live only
// in memory, so there is nothing to flush; the hook stays for symmetry with
// startup.
func (app *application) cleanup() {
	app.logger.Debug("application cleanup completed")
}
