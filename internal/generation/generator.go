package generation

import (
	"context"

	"github.com/phrazzld/collage-api/internal/domain"
)

// Generator defines the interface for producing one image from subject and
// style reference photos. This interface serves as a boundary between the
// application core and external AI/LLM services, following the hexagonal
// architecture pattern.
type Generator interface {
	// GenerateImage renders the request's subjects in the style of its
	// reference images and returns the produced image.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - req: The subjects, style references, and optional user instructions
	//
	// Returns:
	//   - The generated ImageAsset
	//   - An error if generation fails (see errors.go for specific types)
	GenerateImage(ctx context.Context, req domain.GenerationRequest) (*domain.ImageAsset, error)
}
