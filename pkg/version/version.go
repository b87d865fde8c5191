// Package version exposes build-time version information.
package version

import "runtime"

// These are intended to be set at build time via -ldflags.
// Example:
// go build -ldflags "-X github.com/Nabeel70/CanvasAI/pkg/version.Version=1.0.0 -X github.com/Nabeel70/CanvasAI/pkg/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version = "1.0.0"
	Commit  = "dev"
)

// Info describes the running build.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get returns the build info for the current binary.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
