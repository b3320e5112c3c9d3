package domain

import "fmt"

// GenerationRequest describes one generation attempt: the subject photos to
// render, the style ("vibe") reference photos, and an optional free-text
// instruction from the user. Requests are constructed fresh per attempt and
// never mutated after construction.
type GenerationRequest struct {
	Subjects     []ImageAsset
	Styles       []ImageAsset
	Instructions string
}

// Validate checks that the request has at least one subject and one style
// asset and that every asset is a well-formed embedded image.
func (r GenerationRequest) Validate() error {
	if len(r.Subjects) == 0 {
		return ErrNoSubjectImages
	}
	if len(r.Styles) == 0 {
		return ErrNoStyleImages
	}
	for i, asset := range r.Subjects {
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("subject image %d: %w", i, err)
		}
	}
	for i, asset := range r.Styles {
		if err := asset.Validate(); err != nil {
			return fmt.Errorf("style image %d: %w", i, err)
		}
	}
	return nil
}
