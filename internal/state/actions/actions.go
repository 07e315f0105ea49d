// Package actions details the boutique.Actions used by the modifiers. The
// action set is the store's complete mutation surface: no other write path
// exists.
package actions

import (
	"github.com/johnsiilver/boutique"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

const (
	// ActReplaceCatalog wholesale-swaps the asset catalog and aggregates.
	ActReplaceCatalog boutique.ActionType = iota
	// ActSetCatalogStatus records the catalog fetch lifecycle.
	ActSetCatalogStatus
	// ActSetFocusedAsset changes which asset the detail view follows.
	ActSetFocusedAsset
	// ActSetFocusedDetail stores a fetched detail snapshot.
	ActSetFocusedDetail
	// ActSetDetailStatus records the detail fetch lifecycle.
	ActSetDetailStatus
	// ActToggleComparison adds or removes a comparison member.
	ActToggleComparison
	// ActSetActiveCurrency switches the quote currency.
	ActSetActiveCurrency
	// ActSetChartRange switches the chart history range.
	ActSetChartRange
	// ActUpsertChartSeries writes a chart cache entry.
	ActUpsertChartSeries
	// ActSetChartStatus records a chart fetch lifecycle per series key.
	ActSetChartStatus
	// ActSetSpotRates replaces the spot price mapping.
	ActSetSpotRates
	// ActSetExchangeInputs updates the calculator inputs.
	ActSetExchangeInputs
	// ActSwapExchange swaps the calculator's from and to sides.
	ActSwapExchange
	// ActSetSearchQuery updates the search filter text.
	ActSetSearchQuery
)

// CatalogUpdate carries a full catalog swap.
type CatalogUpdate struct {
	Assets     []models.Asset
	Aggregates models.MarketAggregates
}

// SeriesUpdate carries one chart cache write.
type SeriesUpdate struct {
	Key    models.SeriesKey
	Points models.ChartSeries
}

// SeriesStatus carries one chart status change.
type SeriesStatus struct {
	Key    models.SeriesKey
	Status models.FetchStatus
}

// ExchangeInputs carries the calculator inputs as entered by the user.
type ExchangeInputs struct {
	From   string
	To     string
	Amount string
}

// ReplaceCatalog swaps the catalog for a freshly fetched one.
func ReplaceCatalog(assets []models.Asset, aggregates models.MarketAggregates) boutique.Action {
	return boutique.Action{Type: ActReplaceCatalog, Update: CatalogUpdate{Assets: assets, Aggregates: aggregates}}
}

// SetCatalogStatus records the catalog fetch status.
func SetCatalogStatus(status models.FetchStatus) boutique.Action {
	return boutique.Action{Type: ActSetCatalogStatus, Update: status}
}

// SetFocusedAsset focuses an asset by id. An empty id clears focus.
func SetFocusedAsset(id string) boutique.Action {
	return boutique.Action{Type: ActSetFocusedAsset, Update: id}
}

// SetFocusedDetail stores the fetched detail for the focused asset.
func SetFocusedDetail(detail *models.AssetDetail) boutique.Action {
	return boutique.Action{Type: ActSetFocusedDetail, Update: detail}
}

// SetDetailStatus records the detail fetch status.
func SetDetailStatus(status models.FetchStatus) boutique.Action {
	return boutique.Action{Type: ActSetDetailStatus, Update: status}
}

// ToggleComparisonMember toggles an asset in or out of the comparison set.
func ToggleComparisonMember(id string) boutique.Action {
	return boutique.Action{Type: ActToggleComparison, Update: id}
}

// SetActiveCurrency switches the quote currency. The store performs no
// refetch; the sync layer observes the change and reacts.
func SetActiveCurrency(code string) boutique.Action {
	return boutique.Action{Type: ActSetActiveCurrency, Update: code}
}

// SetChartRange switches the chart history range in days.
func SetChartRange(days int) boutique.Action {
	return boutique.Action{Type: ActSetChartRange, Update: days}
}

// UpsertChartSeries writes a chart cache entry.
func UpsertChartSeries(key models.SeriesKey, points models.ChartSeries) boutique.Action {
	return boutique.Action{Type: ActUpsertChartSeries, Update: SeriesUpdate{Key: key, Points: points}}
}

// SetChartStatus records a fetch status for one series key.
func SetChartStatus(key models.SeriesKey, status models.FetchStatus) boutique.Action {
	return boutique.Action{Type: ActSetChartStatus, Update: SeriesStatus{Key: key, Status: status}}
}

// SetSpotRates replaces the spot price mapping.
func SetSpotRates(rates models.SpotPrices) boutique.Action {
	return boutique.Action{Type: ActSetSpotRates, Update: rates}
}

// SetExchangeInputs updates the calculator inputs.
func SetExchangeInputs(from, to, amount string) boutique.Action {
	return boutique.Action{Type: ActSetExchangeInputs, Update: ExchangeInputs{From: from, To: to, Amount: amount}}
}

// SwapExchange swaps the calculator's from and to sides.
func SwapExchange() boutique.Action {
	return boutique.Action{Type: ActSwapExchange, Update: nil}
}

// SetSearchQuery updates the search filter text.
func SetSearchQuery(query string) boutique.Action {
	return boutique.Action{Type: ActSetSearchQuery, Update: query}
}
