package api

import (
	"context"
	"encoding/json"
	"net/http"

	app "github.com/Nabeel70/CanvasAI/internal/app"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// Default palette size when the body omits count.
const defaultPaletteCount = 5

// PaletteDependencies defines the interface for palette generation.
type PaletteDependencies interface {
	GeneratePalette(ctx context.Context, count int) (app.PaletteResult, error)
}

// PaletteHandler handles palette generation requests.
type PaletteHandler struct {
	deps PaletteDependencies
	log  logger.Logger
}

// NewPaletteHandler creates a new palette handler.
func NewPaletteHandler(deps PaletteDependencies, log logger.Logger) *PaletteHandler {
	return &PaletteHandler{deps: deps, log: log}
}

// HandleGeneratePalette handles POST /ai/palette requests. base_color and
// image_data are accepted but never alter the output; count below zero is
// accepted and yields an empty palette.
func (h *PaletteHandler) HandleGeneratePalette(w http.ResponseWriter, r *http.Request) {
	const op = "api.generate_palette"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	req := paletteRequest{Count: defaultPaletteCount}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(r.Context(), "error generating palette", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	res, err := h.deps.GeneratePalette(r.Context(), req.Count)
	if err != nil {
		h.log.Error(r.Context(), "error generating palette", logger.Error(WrapKind(op, ErrProcessing, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, paletteResponse{Colors: res.Colors, HarmonyType: res.Harmony})
}
