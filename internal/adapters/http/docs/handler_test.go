package docs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nabeel70/CanvasAI/internal/adapters/http/docs"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given the docs routes", t, func() {
		mux := http.NewServeMux()
		docs.Register(context.Background(), mux)

		Convey("Then /docs serves the ReDoc page", func() {
			req := httptest.NewRequest(http.MethodGet, "/docs", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(w.Body.String(), ShouldContainSubstring, "redoc")
			So(w.Body.String(), ShouldContainSubstring, "<title>CanvasAI AI Services - API Docs</title>")
		})

		Convey("Then /openapi.yaml serves the embedded spec", func() {
			req := httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "CanvasAI - AI Services")
			So(w.Body.String(), ShouldContainSubstring, "/ai/layout")
		})
	})
}
