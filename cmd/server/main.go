// Package main implements the entry point for the collage API server,
// which turns user photos plus "vibe" reference photos into batches of
// generated images the browser assembles into a printable collage.
package main

import (
	"context"
	"fmt"
	"log"
)

// main is the entry point for the collage-api server. It initializes
// configuration, logging, the Gemini client, and the service layer, then
// serves HTTP until interrupted.
func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and wires up application components.
func initializeApp(ctx context.Context) (*application, error) {
	app, err := newApplication(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}
