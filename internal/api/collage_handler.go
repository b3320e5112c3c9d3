package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/collage-api/internal/api/shared"
	"github.com/phrazzld/collage-api/internal/domain"
	"github.com/phrazzld/collage-api/internal/service"
)

// CollageHandler handles the collage endpoints.
type CollageHandler struct {
	collageService service.CollageService
	logger         *slog.Logger
}

// NewCollageHandler creates a new CollageHandler with the given service.
func NewCollageHandler(collageService service.CollageService, logger *slog.Logger) *CollageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollageHandler{
		collageService: collageService,
		logger:         logger.With(slog.String("component", "collage_handler")),
	}
}

// Start handles POST /api/collages. It parses the embedded images, launches
// the batch, and answers 202 with the batch ID and the initial pending
// slots; the client polls for completion.
func (h *CollageHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartCollageRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	genReq, err := decodeGenerationRequest(req)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	id, slots, err := h.collageService.StartGeneration(r.Context(), genReq, req.Count)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, CollageResponse{
		ID:    id.String(),
		Slots: toSlotResponses(slots),
	})
}

// Get handles GET /api/collages/{id}. It returns the current slot snapshot.
func (h *CollageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathCollageID(w, r)
	if !ok {
		return
	}

	slots, err := h.collageService.GetCollage(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CollageResponse{
		ID:    id.String(),
		Slots: toSlotResponses(slots),
	})
}

// Regenerate handles POST /api/collages/{id}/slots/{index}/regenerate. A
// pending slot answers 409; a terminal slot is relaunched and the handler
// answers 202 immediately.
func (h *CollageHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathCollageID(w, r)
	if !ok {
		return
	}

	indexParam := chi.URLParam(r, "index")
	index, err := strconv.Atoi(indexParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid slot index")
		return
	}

	if err := h.collageService.RegenerateSlot(r.Context(), id, index); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusAccepted, map[string]string{
		"id":     id.String(),
		"slot":   indexParam,
		"status": string(domain.SlotStatusPending),
	})
}

// Reset handles DELETE /api/collages/{id}. The batch is discarded; slots
// still generating finish against the discarded batch and are never seen.
func (h *CollageHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathCollageID(w, r)
	if !ok {
		return
	}

	if err := h.collageService.ResetCollage(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Layout handles GET /api/collages/{id}/layout. It returns only the done
// slots as a label to data-URL mapping for the collage renderer.
func (h *CollageHandler) Layout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathCollageID(w, r)
	if !ok {
		return
	}

	images, err := h.collageService.Layout(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toLayoutResponse(id.String(), images))
}

// pathCollageID extracts and parses the {id} path parameter, writing a 400
// response on failure.
func (h *CollageHandler) pathCollageID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid collage ID")
		return uuid.Nil, false
	}
	return id, true
}

// decodeGenerationRequest parses the request's data URLs into domain assets.
func decodeGenerationRequest(req StartCollageRequest) (domain.GenerationRequest, error) {
	subjects, err := decodeAssets(req.Subjects, "subject")
	if err != nil {
		return domain.GenerationRequest{}, err
	}
	styles, err := decodeAssets(req.Styles, "style")
	if err != nil {
		return domain.GenerationRequest{}, err
	}
	return domain.GenerationRequest{
		Subjects:     subjects,
		Styles:       styles,
		Instructions: req.Instructions,
	}, nil
}

// decodeAssets parses a list of data URLs, reporting the position of the
// first malformed entry.
func decodeAssets(dataURLs []string, kind string) ([]domain.ImageAsset, error) {
	assets := make([]domain.ImageAsset, 0, len(dataURLs))
	for i, raw := range dataURLs {
		asset, err := domain.ParseDataURL(raw)
		if err != nil {
			return nil, fmt.Errorf("%s image %d: %w", kind, i, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}
