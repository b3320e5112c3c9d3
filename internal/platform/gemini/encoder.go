package gemini

import (
	"fmt"

	"google.golang.org/genai"

	"github.com/phrazzld/collage-api/internal/domain"
)

// taskInstruction is the fixed system-level description sent with every
// generation request. The user's free-text instruction is appended when
// non-empty.
const taskInstruction = "Render the subject photo(s) in the style and vibe of the " +
	"reference images, preserving the subject's recognizable identity. " +
	"Return a single finished image."

// buildParts converts a generation request into the ordered wire parts the
// Gemini API expects: subject images first, then style images, then one text
// part with the composed instruction. Fails with a wrapped
// domain.ErrInvalidEncoding when an asset is not a well-formed embedded
// image. No side effects.
func buildParts(req domain.GenerationRequest) ([]*genai.Part, error) {
	parts := make([]*genai.Part, 0, len(req.Subjects)+len(req.Styles)+1)

	for i, asset := range req.Subjects {
		part, err := imagePart(asset)
		if err != nil {
			return nil, fmt.Errorf("subject image %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	for i, asset := range req.Styles {
		part, err := imagePart(asset)
		if err != nil {
			return nil, fmt.Errorf("style image %d: %w", i, err)
		}
		parts = append(parts, part)
	}

	parts = append(parts, &genai.Part{Text: composeInstruction(req.Instructions)})

	return parts, nil
}

// imagePart wraps one asset as an inline-data part.
func imagePart(asset domain.ImageAsset) (*genai.Part, error) {
	if err := asset.Validate(); err != nil {
		return nil, err
	}
	return &genai.Part{
		InlineData: &genai.Blob{
			MIMEType: asset.MediaType,
			Data:     asset.Data,
		},
	}, nil
}

// composeInstruction combines the fixed task instruction with the
// user-supplied free-text instruction, when present.
func composeInstruction(userInstructions string) string {
	if userInstructions == "" {
		return taskInstruction
	}
	return taskInstruction + "\n\nAdditional instructions: " + userInstructions
}
