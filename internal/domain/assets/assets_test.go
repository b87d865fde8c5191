package assets_test

import (
	"fmt"
	"testing"

	"github.com/Nabeel70/CanvasAI/internal/domain/assets"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSearch(t *testing.T) {
	Convey("Given the synthetic asset search", t, func() {
		Convey("When the limit is below the cap", func() {
			results := assets.Search("icons", 3, 5)
			So(len(results), ShouldEqual, 3)
		})

		Convey("When the limit exceeds the cap", func() {
			results := assets.Search("icons", 10, 5)
			So(len(results), ShouldEqual, 5)
		})

		Convey("When the limit is zero or negative", func() {
			So(assets.Search("icons", 0, 5), ShouldBeEmpty)
			So(assets.Search("icons", -2, 5), ShouldBeEmpty)
		})

		Convey("Then results follow the fixed templates", func() {
			results := assets.Search("icons", 5, 5)
			for i, r := range results {
				So(r.ID, ShouldEqual, fmt.Sprintf("asset-%d", i))
				So(r.URL, ShouldEqual, fmt.Sprintf("https://picsum.photos/200/200?random=%d", i))
				So(r.Title, ShouldEqual, fmt.Sprintf("Sample Asset %d", i))
				So(r.Tags, ShouldResemble, []string{"sample", "image"})
			}
		})

		Convey("Then relevance decreases strictly from 0.9 in 0.1 steps", func() {
			results := assets.Search("icons", 5, 5)
			for i, r := range results {
				So(r.Relevance, ShouldAlmostEqual, 0.9-0.1*float64(i), 1e-9)
				if i > 0 {
					So(r.Relevance, ShouldBeLessThan, results[i-1].Relevance)
				}
			}
		})
	})
}
