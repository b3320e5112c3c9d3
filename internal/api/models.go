package api

import (
	"github.com/samber/lo"

	"github.com/phrazzld/collage-api/internal/domain"
)

// StartCollageRequest is the request body for starting a collage batch.
// Subjects and styles are base64 data URLs as produced by the browser.
type StartCollageRequest struct {
	Subjects     []string `json:"subjects"     validate:"required,min=1"`
	Styles       []string `json:"styles"       validate:"required,min=1"`
	Instructions string   `json:"instructions" validate:"max=2000"`
	Count        int      `json:"count"        validate:"required,min=1"`
}

// SlotResponse is the API representation of one generation slot. Done slots
// carry the generated image as a data URL; errored slots carry a sanitized
// message.
type SlotResponse struct {
	Index   int    `json:"index"`
	Status  string `json:"status"`
	Image   string `json:"image,omitempty"`
	Message string `json:"message,omitempty"`
}

// CollageResponse is the API representation of a collage batch.
type CollageResponse struct {
	ID    string         `json:"id"`
	Slots []SlotResponse `json:"slots"`
}

// LayoutResponse maps slot labels to generated image data URLs. Only done
// slots appear; the browser's collage renderer consumes this directly.
type LayoutResponse struct {
	ID     string            `json:"id"`
	Images map[string]string `json:"images"`
}

// toSlotResponses converts a slot snapshot to its API representation.
func toSlotResponses(slots []domain.SlotResult) []SlotResponse {
	return lo.Map(slots, func(slot domain.SlotResult, index int) SlotResponse {
		resp := SlotResponse{
			Index:   index,
			Status:  string(slot.Status),
			Message: slot.Message,
		}
		if slot.Image != nil {
			resp.Image = slot.Image.DataURL()
		}
		return resp
	})
}

// toLayoutResponse converts the service layout mapping to data URLs.
func toLayoutResponse(id string, images map[string]domain.ImageAsset) LayoutResponse {
	return LayoutResponse{
		ID: id,
		Images: lo.MapValues(images, func(image domain.ImageAsset, _ string) string {
			return image.DataURL()
		}),
	}
}
