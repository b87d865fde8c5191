// Package trace renders the mock vectorization output: a fixed SVG template
// sized to the dimensions of the traced raster image.
package trace

import "fmt"

// DefaultConfidence is the confidence the mock tracer reports.
const DefaultConfidence = 0.85

// Border inset and caption styling for the placeholder SVG.
const (
	borderInset  = 10
	borderWidth  = 2
	cornerRadius = 4
	captionSize  = 16
)

// SVG renders the placeholder vector output for an image of the given pixel
// dimensions: a rounded-rectangle border inset from the edges and a centered
// caption.
func SVG(width, height int) string {
	return fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
  <rect x="%d" y="%d" width="%d" height="%d" rx="%d" fill="none" stroke="#000000" stroke-width="%d"/>
  <text x="%d" y="%d" text-anchor="middle" font-family="Arial" font-size="%d">Traced Image</text>
</svg>`,
		width, height,
		borderInset, borderInset, width-2*borderInset, height-2*borderInset, cornerRadius, borderWidth,
		width/2, height/2, captionSize,
	)
}
