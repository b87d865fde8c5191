package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Nabeel70/CanvasAI/internal/domain/scene"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// LayoutDependencies defines the interface for layout generation.
type LayoutDependencies interface {
	GenerateLayout(ctx context.Context, prompt string, width, height int) (scene.Graph, error)
}

// LayoutHandler handles layout generation requests.
type LayoutHandler struct {
	deps LayoutDependencies
	log  logger.Logger
}

// NewLayoutHandler creates a new layout handler.
func NewLayoutHandler(deps LayoutDependencies, log logger.Logger) *LayoutHandler {
	return &LayoutHandler{deps: deps, log: log}
}

// HandleGenerateLayout handles POST /ai/layout requests.
func (h *LayoutHandler) HandleGenerateLayout(w http.ResponseWriter, r *http.Request) {
	const op = "api.generate_layout"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	// Pre-filled defaults survive fields the body omits.
	req := layoutRequest{Width: scene.DefaultWidth, Height: scene.DefaultHeight, Style: scene.DefaultStyle}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(r.Context(), "error generating layout", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := req.validate(); err != nil {
		h.log.Error(r.Context(), "error generating layout", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	graph, err := h.deps.GenerateLayout(r.Context(), *req.Prompt, req.Width, req.Height)
	if err != nil {
		h.log.Error(r.Context(), "error generating layout", logger.Error(WrapKind(op, ErrProcessing, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{SceneGraph: graph, PreviewImage: nil})
}
