// Package palette produces the mock color palettes served by the palette
// endpoint.
package palette

// HarmonyComplementary is the only harmony the mock generator reports.
const HarmonyComplementary = "complementary"

// swatches is the fixed palette, ordered: primary blue, darker blue,
// lighter blue, complementary orange, neutral gray.
var swatches = []string{
	"#3B82F6",
	"#1E40AF",
	"#93C5FD",
	"#F59E0B",
	"#6B7280",
}

// Size returns the number of swatches available.
func Size() int {
	return len(swatches)
}

// Generate returns the first count swatches. Counts above the swatch list
// yield the whole list; counts at or below zero yield an empty palette.
// Negative counts are accepted, never rejected.
func Generate(count int) []string {
	if count < 0 {
		count = 0
	}
	if count > len(swatches) {
		count = len(swatches)
	}
	out := make([]string, count)
	copy(out, swatches[:count])
	return out
}
