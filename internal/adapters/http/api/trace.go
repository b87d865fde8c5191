package api

import (
	"context"
	"encoding/json"
	"net/http"

	app "github.com/Nabeel70/CanvasAI/internal/app"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// TraceDependencies defines the interface for image tracing.
type TraceDependencies interface {
	TraceImage(ctx context.Context, imageData string) (app.TraceResult, error)
}

// TraceHandler handles image tracing requests.
type TraceHandler struct {
	deps TraceDependencies
	log  logger.Logger
}

// NewTraceHandler creates a new trace handler.
func NewTraceHandler(deps TraceDependencies, log logger.Logger) *TraceHandler {
	return &TraceHandler{deps: deps, log: log}
}

// HandleTraceImage handles POST /ai/trace requests.
func (h *TraceHandler) HandleTraceImage(w http.ResponseWriter, r *http.Request) {
	const op = "api.trace_image"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req traceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error(r.Context(), "error tracing image", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := req.validate(); err != nil {
		h.log.Error(r.Context(), "error tracing image", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	res, err := h.deps.TraceImage(r.Context(), req.ImageData)
	if err != nil {
		h.log.Error(r.Context(), "error tracing image", logger.Error(WrapKind(op, ErrProcessing, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, traceResponse{SVGContent: res.SVG, Confidence: res.Confidence})
}
