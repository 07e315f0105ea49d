// Package data holds the state object stored in the boutique instance.
// Everything in here is treated as immutable: modifiers replace values, they
// never mutate in place, so readers always observe a consistent snapshot.
package data

import (
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// MaxComparisonSize bounds the comparison set. Adding a member beyond this
// is silently ignored, not an error.
const MaxComparisonSize = 5

// Exchange holds the calculator inputs and the derived result. Amount is
// the raw user input and may be incomplete ("", "12.", ".5"). Result is the
// display string truncated to 8 fractional digits, empty when no result is
// computable; Reason explains an empty result when one is expected.
type Exchange struct {
	From   string
	To     string
	Amount string
	Result string
	Reason string
}

// State is the authoritative in-memory snapshot of the dashboard. It is
// owned exclusively by the store; components receive read-only copies.
type State struct {
	// Catalog.
	Assets        []models.Asset
	Aggregates    models.MarketAggregates
	CatalogStatus models.FetchStatus

	// Selection.
	ActiveCurrency string
	FocusedAsset   string // asset id, empty when nothing is focused
	FocusedDetail  *models.AssetDetail
	DetailStatus   models.FetchStatus
	Comparison     []string // ordered, unique, len <= MaxComparisonSize

	// Charts.
	ChartRangeDays int
	Charts         map[models.SeriesKey]models.ChartSeries
	ChartStatus    map[models.SeriesKey]models.FetchStatus

	// Exchange calculator.
	SpotRates models.SpotPrices
	Exchange  Exchange

	// Search.
	SearchQuery string
}

// AssetByID resolves an asset from the current catalog.
func (s State) AssetByID(id string) (models.Asset, bool) {
	for _, a := range s.Assets {
		if a.ID == id {
			return a, true
		}
	}
	return models.Asset{}, false
}
