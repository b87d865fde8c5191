package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/Nabeel70/CanvasAI/internal/adapters/http/api"
	"github.com/Nabeel70/CanvasAI/internal/adapters/http/docs"
	app "github.com/Nabeel70/CanvasAI/internal/app"
	"github.com/Nabeel70/CanvasAI/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("CANVASAI_ADDR", ":8080")
			_ = os.Setenv("CANVASAI_MAX_SEARCH_RESULTS", "3")
			defer func() {
				_ = os.Unsetenv("CANVASAI_ADDR")
				_ = os.Unsetenv("CANVASAI_MAX_SEARCH_RESULTS")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxSearchResults, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithMaxPaletteSize(3),
					app.WithMaxSearchResults(2),
					app.WithTraceConfidence(0.9),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			mux := http.NewServeMux()
			docs.Register(context.Background(), mux)
			api.NewServer(svc).Register(context.Background(), mux)

			srv := &http.Server{
				Addr:              ":0",
				Handler:           api.RequestIDMiddleware(api.CORSMiddleware(mux)),
				ReadTimeout:       readTimeout,
				WriteTimeout:      writeTimeout,
				IdleTimeout:       idleTimeout,
				ReadHeaderTimeout: readHeaderTimeout,
			}

			convey.Convey("Then the server should carry the configured timeouts", func() {
				convey.So(srv.ReadTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.WriteTimeout, convey.ShouldEqual, 10*time.Second)
				convey.So(srv.IdleTimeout, convey.ShouldEqual, 60*time.Second)
				convey.So(srv.Handler, convey.ShouldNotBeNil)
			})
		})
	})
}
