package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/collage-api/internal/api"
	apiMiddleware "github.com/phrazzld/collage-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	collageHandler := api.NewCollageHandler(app.collageService, app.logger)

	r.Route("/api/collages", func(r chi.Router) {
		r.Post("/", collageHandler.Start)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", collageHandler.Get)
			r.Delete("/", collageHandler.Reset)
			r.Get("/layout", collageHandler.Layout)
			r.Post("/slots/{index}/regenerate", collageHandler.Regenerate)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
