// Package assets generates the synthetic results served by asset search.
package assets

import "fmt"

// relevance starts at relevanceBase and drops relevanceStep per position.
const (
	relevanceBase = 0.9
	relevanceStep = 0.1
)

// Result is one synthetic search hit.
type Result struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Relevance float64  `json:"relevance"`
}

// Search returns up to max synthetic results for a query, with strictly
// decreasing relevance. The query itself never changes the output; limits
// at or below zero yield no results.
func Search(_ string, limit, max int) []Result {
	n := limit
	if n > max {
		n = max
	}
	if n < 0 {
		n = 0
	}
	results := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, Result{
			ID:        fmt.Sprintf("asset-%d", i),
			URL:       fmt.Sprintf("https://picsum.photos/200/200?random=%d", i),
			Title:     fmt.Sprintf("Sample Asset %d", i),
			Tags:      []string{"sample", "image"},
			Relevance: relevanceBase - float64(i)*relevanceStep,
		})
	}
	return results
}
