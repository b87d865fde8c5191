// Package scene models the design-canvas scene graph returned by layout
// generation: an artboard plus a flat list of positioned elements.
package scene

// Default artboard dimensions when a request omits them.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultStyle  = "modern"
)

// Graph is a complete scene: one artboard and its elements.
type Graph struct {
	Artboard Artboard  `json:"artboard"`
	Elements []Element `json:"elements"`
}

// Artboard is the drawing surface.
type Artboard struct {
	ID              string `json:"id"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
	BackgroundColor string `json:"backgroundColor"`
}

// Position locates an element on the artboard.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size gives an element's extent. Text elements size to their content and
// omit it.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Style carries the visual attributes of an element. Only fields relevant
// to the element type are set.
type Style struct {
	FontSize   int    `json:"fontSize,omitempty"`
	FontFamily string `json:"fontFamily,omitempty"`
	Color      string `json:"color,omitempty"`
	Fill       string `json:"fill,omitempty"`
	Stroke     string `json:"stroke,omitempty"`
}

// Element is a single node in the scene graph.
type Element struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Content  string   `json:"content,omitempty"`
	Position Position `json:"position"`
	Size     *Size    `json:"size,omitempty"`
	Style    Style    `json:"style"`
}

// Build assembles the layout scene graph for a prompt: a text node echoing
// the prompt and a single accent rectangle on a white artboard.
func Build(prompt string, width, height int) Graph {
	return Graph{
		Artboard: Artboard{
			ID:              "artboard-1",
			Width:           width,
			Height:          height,
			BackgroundColor: "#FFFFFF",
		},
		Elements: []Element{
			{
				ID:       "text-1",
				Type:     "text",
				Content:  "Generated from: " + prompt,
				Position: Position{X: 50, Y: 50},
				Style: Style{
					FontSize:   24,
					FontFamily: "Inter",
					Color:      "#333333",
				},
			},
			{
				ID:       "rect-1",
				Type:     "rectangle",
				Position: Position{X: 50, Y: 100},
				Size:     &Size{Width: 200, Height: 100},
				Style: Style{
					Fill:   "#3B82F6",
					Stroke: "none",
				},
			},
		},
	}
}
