package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// InpaintDependencies defines the interface for inpainting.
type InpaintDependencies interface {
	InpaintImage(ctx context.Context, imageData, maskData, prompt string) (string, error)
}

// InpaintHandler handles inpainting requests.
type InpaintHandler struct {
	deps InpaintDependencies
	log  logger.Logger
}

// NewInpaintHandler creates a new inpaint handler.
func NewInpaintHandler(deps InpaintDependencies, log logger.Logger) *InpaintHandler {
	return &InpaintHandler{deps: deps, log: log}
}

// HandleInpaintImage handles POST /ai/inpaint requests.
func (h *InpaintHandler) HandleInpaintImage(w http.ResponseWriter, r *http.Request) {
	const op = "api.inpaint_image"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req inpaintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(r.Context(), "error inpainting image", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := req.validate(); err != nil {
		h.log.Error(r.Context(), "error inpainting image", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out, err := h.deps.InpaintImage(r.Context(), req.ImageData, req.MaskData, req.Prompt)
	if err != nil {
		h.log.Error(r.Context(), "error inpainting image", logger.Error(WrapKind(op, ErrProcessing, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, inpaintResponse{ImageData: out})
}
