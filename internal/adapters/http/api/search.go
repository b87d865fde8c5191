package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Nabeel70/CanvasAI/internal/domain/assets"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// Default result limit when the query string omits it.
const defaultSearchLimit = 10

// SearchDependencies defines the interface for asset search.
type SearchDependencies interface {
	SearchAssets(ctx context.Context, query string, limit int) ([]assets.Result, error)
}

// SearchHandler handles asset search requests.
type SearchHandler struct {
	deps SearchDependencies
	log  logger.Logger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(deps SearchDependencies, log logger.Logger) *SearchHandler {
	return &SearchHandler{deps: deps, log: log}
}

// HandleSearchAssets handles POST /ai/search?query=...&limit=N requests.
// Parameters ride the query string, not the body.
func (h *SearchHandler) HandleSearchAssets(w http.ResponseWriter, r *http.Request) {
	const op = "api.search_assets"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	// query is required; an empty value is fine, absence is not.
	if !r.URL.Query().Has("query") {
		err := errors.New("missing query")
		h.log.Error(r.Context(), "error searching assets", logger.Error(WrapKind(op, ErrBadRequest, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	query := r.URL.Query().Get("query")

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			err = fmt.Errorf("invalid limit %q", raw)
			h.log.Error(r.Context(), "error searching assets", logger.Error(WrapKind(op, ErrBadRequest, err)))
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		limit = n
	}

	results, err := h.deps.SearchAssets(r.Context(), query, limit)
	if err != nil {
		h.log.Error(r.Context(), "error searching assets", logger.Error(WrapKind(op, ErrProcessing, err)))
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results, Total: len(results)})
}
