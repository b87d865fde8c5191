package api

import (
	"net/http"

	"github.com/Nabeel70/CanvasAI/pkg/version"
)

// RootHandler serves the service identity record.
type RootHandler struct{}

// NewRootHandler creates a new root handler.
func NewRootHandler() *RootHandler {
	return &RootHandler{}
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HandleRoot handles GET / requests. The root pattern catches every path
// the mux does not know, so anything but exactly "/" is a 404.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, rootResponse{
		Message: "CanvasAI AI Services",
		Version: version.Get().Version,
	})
}
