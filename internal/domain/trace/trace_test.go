package trace_test

import (
	"strings"
	"testing"

	"github.com/Nabeel70/CanvasAI/internal/domain/trace"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSVG(t *testing.T) {
	Convey("Given image dimensions", t, func() {
		svg := trace.SVG(200, 120)

		Convey("Then the SVG is sized to the image", func() {
			So(svg, ShouldContainSubstring, `width="200"`)
			So(svg, ShouldContainSubstring, `height="120"`)
		})

		Convey("Then the border is inset from the edges", func() {
			So(svg, ShouldContainSubstring, `<rect x="10" y="10" width="180" height="100"`)
			So(svg, ShouldContainSubstring, `stroke="#000000"`)
		})

		Convey("Then the caption sits at the center", func() {
			So(svg, ShouldContainSubstring, `x="100" y="60"`)
			So(svg, ShouldContainSubstring, "Traced Image")
		})

		Convey("Then the output is a single well-formed svg element", func() {
			So(strings.HasPrefix(svg, "<svg "), ShouldBeTrue)
			So(strings.HasSuffix(svg, "</svg>"), ShouldBeTrue)
		})
	})
}

func TestDefaultConfidence(t *testing.T) {
	Convey("The mock tracer reports a constant confidence", t, func() {
		So(trace.DefaultConfidence, ShouldEqual, 0.85)
	})
}
