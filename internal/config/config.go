// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Loading layers defaults, an optional YAML file, and environment variables.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// MaxPaletteSize caps the number of colors a palette response carries.
	MaxPaletteSize int `koanf:"max_palette_size"`

	// MaxSearchResults caps the number of synthetic search results.
	MaxSearchResults int `koanf:"max_search_results"`

	// TraceConfidence is the confidence reported for traced images.
	TraceConfidence float64 `koanf:"trace_confidence"`

	// DocsEnabled toggles the /docs and /openapi.yaml routes.
	DocsEnabled bool `koanf:"docs_enabled"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8000",
		MaxPaletteSize:   5,
		MaxSearchResults: 5,
		TraceConfidence:  0.85,
		DocsEnabled:      true,
	}
}
