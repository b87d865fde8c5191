// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	app "github.com/Nabeel70/CanvasAI/internal/app"
	"github.com/Nabeel70/CanvasAI/internal/domain/assets"
	"github.com/Nabeel70/CanvasAI/internal/domain/scene"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	GenerateLayout(ctx context.Context, prompt string, width, height int) (scene.Graph, error)
	TraceImage(ctx context.Context, imageData string) (app.TraceResult, error)
	GeneratePalette(ctx context.Context, count int) (app.PaletteResult, error)
	InpaintImage(ctx context.Context, imageData, maskData, prompt string) (string, error)
	SearchAssets(ctx context.Context, query string, limit int) ([]assets.Result, error)
}

// Server wires HTTP routes for the AI API.
type Server struct {
	rootHandler    *RootHandler
	healthHandler  *HealthHandler
	layoutHandler  *LayoutHandler
	traceHandler   *TraceHandler
	paletteHandler *PaletteHandler
	inpaintHandler *InpaintHandler
	searchHandler  *SearchHandler
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	log logger.Logger
}

// WithLogger sets the logger used to report handler failures.
func WithLogger(l logger.Logger) ServerOption {
	return func(c *serverConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, opts ...ServerOption) *Server {
	cfg := &serverConfig{log: noopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{
		rootHandler:    NewRootHandler(),
		healthHandler:  NewHealthHandler(),
		layoutHandler:  NewLayoutHandler(deps, cfg.log),
		traceHandler:   NewTraceHandler(deps, cfg.log),
		paletteHandler: NewPaletteHandler(deps, cfg.log),
		inpaintHandler: NewInpaintHandler(deps, cfg.log),
		searchHandler:  NewSearchHandler(deps, cfg.log),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/", s.rootHandler.HandleRoot)
	mux.HandleFunc("/health", MetricsMiddleware(s.healthHandler.HandleHealth, "health"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/ai/layout", MetricsMiddleware(s.layoutHandler.HandleGenerateLayout, "layout"))
	mux.HandleFunc("/ai/trace", MetricsMiddleware(s.traceHandler.HandleTraceImage, "trace"))
	mux.HandleFunc("/ai/palette", MetricsMiddleware(s.paletteHandler.HandleGeneratePalette, "palette"))
	mux.HandleFunc("/ai/inpaint", MetricsMiddleware(s.inpaintHandler.HandleInpaintImage, "inpaint"))
	mux.HandleFunc("/ai/search", MetricsMiddleware(s.searchHandler.HandleSearchAssets, "search"))
}

// layoutRequest mirrors the JSON schema for POST /ai/layout. Prompt is a
// pointer so a missing field can be told apart from an explicit empty
// string; the empty string is a valid prompt.
type layoutRequest struct {
	Prompt *string `json:"prompt"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Style  string  `json:"style"`
}

func (r layoutRequest) validate() error {
	if r.Prompt == nil {
		return errors.New("missing prompt")
	}
	return nil
}

type layoutResponse struct {
	SceneGraph   scene.Graph `json:"scene_graph"`
	PreviewImage *string     `json:"preview_image"`
}

// traceRequest mirrors the JSON schema for POST /ai/trace.
type traceRequest struct {
	ImageData string `json:"image_data"`
}

func (r traceRequest) validate() error {
	if r.ImageData == "" {
		return errors.New("missing image_data")
	}
	return nil
}

type traceResponse struct {
	SVGContent string  `json:"svg_content"`
	Confidence float64 `json:"confidence"`
}

// paletteRequest mirrors the JSON schema for POST /ai/palette. image_data
// and base_color are accepted but never alter the output.
type paletteRequest struct {
	ImageData string `json:"image_data"`
	BaseColor string `json:"base_color"`
	Count     int    `json:"count"`
}

type paletteResponse struct {
	Colors      []string `json:"colors"`
	HarmonyType string   `json:"harmony_type"`
}

// inpaintRequest mirrors the JSON schema for POST /ai/inpaint.
type inpaintRequest struct {
	ImageData string `json:"image_data"`
	MaskData  string `json:"mask_data"`
	Prompt    string `json:"prompt"`
}

func (r inpaintRequest) validate() error {
	switch {
	case r.ImageData == "":
		return errors.New("missing image_data")
	case r.MaskData == "":
		return errors.New("missing mask_data")
	}
	return nil
}

type inpaintResponse struct {
	ImageData string `json:"image_data"`
}

type searchResponse struct {
	Results []assets.Result `json:"results"`
	Total   int             `json:"total"`
}

// errorResponse is the uniform failure envelope: the causing error's text
// in a detail field.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Detail: msg})
}

// noopLogger is the fallback when no logger is injected.
type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...logger.Field)  {}
func (noopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (noopLogger) Error(context.Context, string, ...logger.Field) {}
func (noopLogger) Debug(context.Context, string, ...logger.Field) {}
func (noopLogger) Fatal(context.Context, string, ...logger.Field) {}
func (noopLogger) Named(string) logger.Logger                     { return noopLogger{} }
