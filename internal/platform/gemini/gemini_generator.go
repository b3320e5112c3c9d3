package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/phrazzld/collage-api/internal/config"
	"github.com/phrazzld/collage-api/internal/domain"
	"github.com/phrazzld/collage-api/internal/generation"
	"github.com/phrazzld/collage-api/internal/redact"
)

// maxDiagnosticTextLen caps how much of a text-only model answer is carried
// in the resulting error message.
const maxDiagnosticTextLen = 200

// contentCaller is the slice of the genai client the generator needs. The
// real client's Models service satisfies it; tests substitute a fake.
type contentCaller interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API to render collage images from reference photos.
type GeminiGenerator struct {
	logger      *slog.Logger
	caller      contentCaller
	model       string
	maxAttempts int
	backoff     time.Duration

	// sleep waits between retry attempts; injectable so tests can observe
	// backoff without waiting it out.
	sleep func(ctx context.Context, d time.Duration) error
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator with the
// provided dependencies.
//
// Parameters:
//   - ctx: Context for client initialization, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key, model name, and retry settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error if initialization fails
func NewGeminiGenerator(
	ctx context.Context,
	logger *slog.Logger,
	cfg config.LLMConfig,
) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, fmt.Errorf("%w: logger cannot be nil", generation.ErrInvalidConfig)
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxAttempts < 1 {
		return nil, fmt.Errorf("%w: max attempts must be at least 1", generation.ErrInvalidConfig)
	}
	if cfg.RetryBackoffMs < 1 {
		return nil, fmt.Errorf("%w: retry backoff must be positive", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &GeminiGenerator{
		logger:      logger,
		caller:      client.Models,
		model:       cfg.ModelName,
		maxAttempts: cfg.MaxAttempts,
		backoff:     cfg.RetryBackoff(),
		sleep:       sleepContext,
	}, nil
}

// GenerateImage renders the request's subjects in the style of its reference
// images via the Gemini API.
//
// The upstream call is attempted up to the configured retry budget, with
// exponential backoff between attempts for transient faults only. Permanent
// faults (auth, malformed request, content policy, text-only answers) fail
// immediately. The returned errors wrap the sentinel errors of the
// generation package.
func (g *GeminiGenerator) GenerateImage(
	ctx context.Context,
	req domain.GenerationRequest,
) (*domain.ImageAsset, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrInvalidRequest, err)
	}

	parts, err := buildParts(req)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{{Role: "user", Parts: parts}}
	genCfg := &genai.GenerateContentConfig{
		// Image models answer with text when they decline; request both
		// modalities so the decline text survives for diagnostics.
		ResponseModalities: []string{"TEXT", "IMAGE"},
	}

	backoff := g.backoff
	var lastErr error
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		g.logger.DebugContext(ctx, "calling Gemini API",
			"model", g.model,
			"attempt", attempt,
			"max_attempts", g.maxAttempts,
			"part_count", len(parts))

		resp, callErr := g.caller.GenerateContent(ctx, g.model, contents, genCfg)
		if callErr == nil {
			return g.extractImage(ctx, resp)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if classifyUpstreamError(callErr) == classPermanent {
			g.logger.WarnContext(ctx, "permanent upstream error, not retrying",
				"attempt", attempt,
				"error", redact.Error(callErr))
			return nil, fmt.Errorf("%w: %s", generation.ErrPermanentFailure, redact.Error(callErr))
		}

		lastErr = callErr
		if attempt == g.maxAttempts {
			break
		}

		g.logger.InfoContext(ctx, "transient upstream error, retrying",
			"attempt", attempt,
			"backoff", backoff.String(),
			"error", redact.Error(callErr))

		if sleepErr := g.sleep(ctx, backoff); sleepErr != nil {
			return nil, sleepErr
		}
		backoff *= 2
	}

	return nil, fmt.Errorf("%w: %s (after %d attempts)",
		generation.ErrTransientFailure, redact.Error(lastErr), g.maxAttempts)
}

// extractImage scans the response's content parts for the first part carrying
// inline image data and returns it as an ImageAsset. A response without an
// image part is a permanent failure: either the model blocked the content or
// it answered with text instead of an image.
func (g *GeminiGenerator) extractImage(
	ctx context.Context,
	resp *genai.GenerateContentResponse,
) (*domain.ImageAsset, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: model returned no candidates", generation.ErrPermanentFailure)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return nil, generation.ErrContentBlocked
	}
	if candidate.Content == nil {
		return nil, fmt.Errorf("%w: candidate has no content", generation.ErrPermanentFailure)
	}

	var textParts []string
	for _, part := range candidate.Content.Parts {
		if part == nil {
			continue
		}
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mediaType := part.InlineData.MIMEType
			if mediaType == "" {
				mediaType = "image/png"
			}
			g.logger.DebugContext(ctx, "extracted image from response",
				"media_type", mediaType,
				"bytes", len(part.InlineData.Data))
			return &domain.ImageAsset{MediaType: mediaType, Data: part.InlineData.Data}, nil
		}
		if part.Text != "" {
			textParts = append(textParts, part.Text)
		}
	}

	text := strings.Join(textParts, " ")
	if len(text) > maxDiagnosticTextLen {
		text = text[:maxDiagnosticTextLen] + "..."
	}
	if text == "" {
		return nil, fmt.Errorf("%w: response contained no image data", generation.ErrTextOnlyResponse)
	}
	return nil, fmt.Errorf("%w: %s", generation.ErrTextOnlyResponse, redact.String(text))
}

// sleepContext waits for the given duration or until the context is done,
// whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
