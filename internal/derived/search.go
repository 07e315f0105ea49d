package derived

import (
	"strings"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// maxSearchResults caps the filtered result set.
const maxSearchResults = 20

// FilterAssets returns the assets whose name or symbol contains query,
// case-insensitively. Ordering follows the catalog (market cap descending),
// not relevance; the result is capped at maxSearchResults.
func FilterAssets(assets []models.Asset, query string) []models.Asset {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Asset, 0, maxSearchResults)
	for _, a := range assets {
		if q == "" ||
			strings.Contains(strings.ToLower(a.Name), q) ||
			strings.Contains(strings.ToLower(a.Symbol), q) {
			out = append(out, a)
			if len(out) == maxSearchResults {
				break
			}
		}
	}
	return out
}
