// Package service provides the core business service that implements the
// dependencies required by the HTTP API. Every operation is a deterministic
// mock of the eventual AI feature: fixed templates parameterized by the
// request, with no inference and no state carried between calls.
package service

import (
	"context"

	"github.com/Nabeel70/CanvasAI/internal/domain/assets"
	"github.com/Nabeel70/CanvasAI/internal/domain/palette"
	"github.com/Nabeel70/CanvasAI/internal/domain/scene"
	"github.com/Nabeel70/CanvasAI/internal/domain/trace"
	"github.com/Nabeel70/CanvasAI/pkg/imaging"
	"github.com/Nabeel70/CanvasAI/pkg/logger"
	"github.com/Nabeel70/CanvasAI/pkg/metrics"
)

// TraceResult is the outcome of a trace operation.
type TraceResult struct {
	SVG        string
	Confidence float64
}

// PaletteResult is the outcome of a palette generation.
type PaletteResult struct {
	Colors  []string
	Harmony string
}

// Service implements the API dependencies for the AI endpoints.
type Service struct {
	maxPaletteSize   int
	maxSearchResults int
	traceConfidence  float64

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxPaletteSize caps the number of colors a palette can carry.
func WithMaxPaletteSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPaletteSize = n
		}
	}
}

// WithMaxSearchResults caps the number of synthetic search results.
func WithMaxSearchResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSearchResults = n
		}
	}
}

// WithTraceConfidence sets the confidence reported for traced images.
func WithTraceConfidence(c float64) Option {
	return func(s *Service) {
		if c > 0 && c <= 1 {
			s.traceConfidence = c
		}
	}
}

// New creates a Service with defaults, then applies options.
func New(opts ...Option) *Service {
	s := &Service{
		maxPaletteSize:   palette.Size(),
		maxSearchResults: 5,
		traceConfidence:  trace.DefaultConfidence,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = noopLogger{}
	}
	return s
}

// GenerateLayout builds the mock scene graph for a prompt.
func (s *Service) GenerateLayout(ctx context.Context, prompt string, width, height int) (scene.Graph, error) {
	s.logger.Info(ctx, "generating layout", logger.String("prompt", prompt),
		logger.Int("width", width), logger.Int("height", height))
	return scene.Build(prompt, width, height), nil
}

// TraceImage decodes the image payload and emits the placeholder SVG sized
// to its dimensions.
func (s *Service) TraceImage(ctx context.Context, imageData string) (TraceResult, error) {
	s.logger.Info(ctx, "tracing image to SVG")

	data, err := imaging.DecodePayload(imageData)
	if err != nil {
		metrics.RecordImageDecode("trace", "error")
		return TraceResult{}, err
	}
	metrics.ObserveImagePayloadBytes("trace", len(data))

	w, h, err := imaging.Bounds(data)
	if err != nil {
		metrics.RecordImageDecode("trace", "error")
		return TraceResult{}, err
	}
	metrics.RecordImageDecode("trace", "ok")

	return TraceResult{SVG: trace.SVG(w, h), Confidence: s.traceConfidence}, nil
}

// GeneratePalette returns the fixed swatch list truncated to count.
func (s *Service) GeneratePalette(ctx context.Context, count int) (PaletteResult, error) {
	s.logger.Info(ctx, "generating color palette", logger.Int("count", count))

	if count > s.maxPaletteSize {
		count = s.maxPaletteSize
	}
	return PaletteResult{
		Colors:  palette.Generate(count),
		Harmony: palette.HarmonyComplementary,
	}, nil
}

// InpaintImage decodes the image and mask payloads and returns the image
// re-encoded as a PNG data URI. The mask and prompt are accepted but do not
// alter the output.
func (s *Service) InpaintImage(ctx context.Context, imageData, maskData, prompt string) (string, error) {
	s.logger.Info(ctx, "inpainting image", logger.String("prompt", prompt))

	data, err := imaging.DecodePayload(imageData)
	if err != nil {
		metrics.RecordImageDecode("inpaint", "error")
		return "", err
	}
	// The mask only has to be decodable base64; it is never opened.
	if _, err := imaging.DecodePayload(maskData); err != nil {
		metrics.RecordImageDecode("inpaint", "error")
		return "", err
	}
	metrics.ObserveImagePayloadBytes("inpaint", len(data))

	img, err := imaging.Decode(data)
	if err != nil {
		metrics.RecordImageDecode("inpaint", "error")
		return "", err
	}
	metrics.RecordImageDecode("inpaint", "ok")

	return imaging.EncodePNGDataURI(img)
}

// SearchAssets returns synthetic results for a query.
func (s *Service) SearchAssets(ctx context.Context, query string, limit int) ([]assets.Result, error) {
	s.logger.Info(ctx, "searching assets", logger.String("query", query), logger.Int("limit", limit))
	return assets.Search(query, limit, s.maxSearchResults), nil
}

// noopLogger is used when no logger is injected, e.g. in tests.
type noopLogger struct{}

func (noopLogger) Info(context.Context, string, ...logger.Field)  {}
func (noopLogger) Warn(context.Context, string, ...logger.Field)  {}
func (noopLogger) Error(context.Context, string, ...logger.Field) {}
func (noopLogger) Debug(context.Context, string, ...logger.Field) {}
func (noopLogger) Fatal(context.Context, string, ...logger.Field) {}
func (noopLogger) Named(string) logger.Logger                     { return noopLogger{} }
