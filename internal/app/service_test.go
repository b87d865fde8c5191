package service_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	service "github.com/Nabeel70/CanvasAI/internal/app"
	"github.com/Nabeel70/CanvasAI/pkg/imaging"
	. "github.com/smartystreets/goconvey/convey"
)

func encodePNG(t *testing.T, w, h int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestService(t *testing.T) {
	Convey("Given the AI service", t, func() {
		ctx := context.Background()
		svc := service.New()

		Convey("When generating a layout", func() {
			g, err := svc.GenerateLayout(ctx, "landing page", 1200, 800)
			So(err, ShouldBeNil)
			So(g.Artboard.Width, ShouldEqual, 1200)
			So(g.Artboard.Height, ShouldEqual, 800)
			So(len(g.Elements), ShouldEqual, 2)
		})

		Convey("When tracing a valid image", func() {
			res, err := svc.TraceImage(ctx, encodePNG(t, 40, 30))
			So(err, ShouldBeNil)
			So(res.SVG, ShouldContainSubstring, `width="40"`)
			So(res.SVG, ShouldContainSubstring, `height="30"`)
			So(res.Confidence, ShouldEqual, 0.85)
		})

		Convey("When tracing a data-URI wrapped image", func() {
			res, err := svc.TraceImage(ctx, "data:image/png;base64,"+encodePNG(t, 40, 30))
			So(err, ShouldBeNil)
			So(res.SVG, ShouldContainSubstring, `width="40"`)
		})

		Convey("When tracing malformed payloads", func() {
			_, err := svc.TraceImage(ctx, "%%%not-base64%%%")
			So(err, ShouldNotBeNil)

			_, err = svc.TraceImage(ctx, base64.StdEncoding.EncodeToString([]byte("not an image")))
			So(err, ShouldNotBeNil)
		})

		Convey("When generating palettes", func() {
			res, err := svc.GeneratePalette(ctx, 3)
			So(err, ShouldBeNil)
			So(res.Colors, ShouldResemble, []string{"#3B82F6", "#1E40AF", "#93C5FD"})
			So(res.Harmony, ShouldEqual, "complementary")

			res, err = svc.GeneratePalette(ctx, 50)
			So(err, ShouldBeNil)
			So(len(res.Colors), ShouldEqual, 5)
		})

		Convey("When inpainting a valid image", func() {
			out, err := svc.InpaintImage(ctx, encodePNG(t, 24, 18), encodePNG(t, 24, 18), "remove background")
			So(err, ShouldBeNil)
			So(out, ShouldStartWith, "data:image/png;base64,")

			data, err := imaging.DecodePayload(out)
			So(err, ShouldBeNil)
			w, h, err := imaging.Bounds(data)
			So(err, ShouldBeNil)
			So(w, ShouldEqual, 24)
			So(h, ShouldEqual, 18)
		})

		Convey("When inpainting with a non-image mask", func() {
			// The mask only has to base64-decode; it is never opened.
			mask := base64.StdEncoding.EncodeToString([]byte("anything"))
			out, err := svc.InpaintImage(ctx, encodePNG(t, 8, 8), mask, "")
			So(err, ShouldBeNil)
			So(out, ShouldStartWith, "data:image/png;base64,")
		})

		Convey("When inpainting with a bad image payload", func() {
			_, err := svc.InpaintImage(ctx, "***", encodePNG(t, 8, 8), "")
			So(err, ShouldNotBeNil)
		})

		Convey("When searching assets", func() {
			results, err := svc.SearchAssets(ctx, "gradient", 10)
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 5)
			So(results[0].Relevance, ShouldAlmostEqual, 0.9, 1e-9)
			So(results[4].Relevance, ShouldAlmostEqual, 0.5, 1e-9)
		})
	})
}

func TestServiceOptions(t *testing.T) {
	Convey("Given service options", t, func() {
		ctx := context.Background()

		Convey("WithMaxSearchResults lowers the cap", func() {
			svc := service.New(service.WithMaxSearchResults(2))
			results, err := svc.SearchAssets(ctx, "q", 10)
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 2)
		})

		Convey("WithMaxPaletteSize lowers the cap", func() {
			svc := service.New(service.WithMaxPaletteSize(2))
			res, err := svc.GeneratePalette(ctx, 5)
			So(err, ShouldBeNil)
			So(len(res.Colors), ShouldEqual, 2)
		})

		Convey("WithTraceConfidence overrides the constant", func() {
			svc := service.New(service.WithTraceConfidence(0.5))
			res, err := svc.TraceImage(ctx, encodePNG(t, 4, 4))
			So(err, ShouldBeNil)
			So(res.Confidence, ShouldEqual, 0.5)
		})

		Convey("Out-of-range options are ignored", func() {
			svc := service.New(
				service.WithMaxSearchResults(0),
				service.WithTraceConfidence(2.0),
			)
			results, err := svc.SearchAssets(ctx, "q", 10)
			So(err, ShouldBeNil)
			So(len(results), ShouldEqual, 5)
		})
	})
}
