// Package modifiers holds the pure state transitions for the store. Every
// modifier copies what it changes and leaves the rest of the snapshot
// untouched, so a transition is atomic and total from a reader's view.
package modifiers

import (
	"github.com/johnsiilver/boutique"

	"github.com/carry9637/cryptocurrency-dashboard/internal/derived"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/actions"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/data"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// All is the combined modifier set for the store.
var All = boutique.NewModifiers(Catalog, Selection, Charts, Exchange, Search)

// Catalog handles catalog swaps and catalog fetch status.
func Catalog(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActReplaceCatalog:
		u := action.Update.(actions.CatalogUpdate)
		// Wholesale swap. FocusedAsset is an id reference and stays as-is
		// even when the new page does not include it.
		s.Assets = u.Assets
		s.Aggregates = u.Aggregates
	case actions.ActSetCatalogStatus:
		s.CatalogStatus = action.Update.(models.FetchStatus)
	}
	return s
}

// Selection handles focus, comparison membership, currency and range.
func Selection(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActSetFocusedAsset:
		s.FocusedAsset = action.Update.(string)
	case actions.ActSetFocusedDetail:
		s.FocusedDetail = action.Update.(*models.AssetDetail)
	case actions.ActSetDetailStatus:
		s.DetailStatus = action.Update.(models.FetchStatus)
	case actions.ActToggleComparison:
		id := action.Update.(string)
		s.Comparison = toggleMember(s.Comparison, id)
	case actions.ActSetActiveCurrency:
		s.ActiveCurrency = action.Update.(string)
	case actions.ActSetChartRange:
		s.ChartRangeDays = action.Update.(int)
	}
	return s
}

// toggleMember removes id when present, appends it when absent and below
// capacity, and is a silent no-op at capacity. Insertion order is preserved
// for stable chart legend ordering.
func toggleMember(members []string, id string) []string {
	for i, m := range members {
		if m != id {
			continue
		}
		out := make([]string, 0, len(members)-1)
		out = append(out, members[:i]...)
		out = append(out, members[i+1:]...)
		return out
	}

	if len(members) >= data.MaxComparisonSize {
		return members
	}
	out := make([]string, len(members), len(members)+1)
	copy(out, members)
	return append(out, id)
}

// Charts handles the chart series cache and per-key fetch status.
func Charts(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActUpsertChartSeries:
		u := action.Update.(actions.SeriesUpdate)
		charts := make(map[models.SeriesKey]models.ChartSeries, len(s.Charts)+1)
		for k, v := range s.Charts {
			charts[k] = v
		}
		charts[u.Key] = u.Points
		s.Charts = charts
	case actions.ActSetChartStatus:
		u := action.Update.(actions.SeriesStatus)
		status := make(map[models.SeriesKey]models.FetchStatus, len(s.ChartStatus)+1)
		for k, v := range s.ChartStatus {
			status[k] = v
		}
		status[u.Key] = u.Status
		s.ChartStatus = status
	}
	return s
}

// Exchange handles calculator inputs and spot rates. The derived result is
// recomputed inside the transition, so a read immediately after the write
// observes consistent state.
func Exchange(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	switch action.Type {
	case actions.ActSetSpotRates:
		s.SpotRates = action.Update.(models.SpotPrices)
		s.Exchange = recompute(s.Exchange, s.SpotRates)
	case actions.ActSetExchangeInputs:
		u := action.Update.(actions.ExchangeInputs)
		ex := s.Exchange
		ex.From = u.From
		ex.To = u.To
		if derived.ValidAmount(u.Amount) {
			ex.Amount = u.Amount
		}
		// Rejected input keeps the previous valid amount.
		s.Exchange = recompute(ex, s.SpotRates)
	case actions.ActSwapExchange:
		ex := s.Exchange
		ex.From, ex.To = ex.To, ex.From
		s.Exchange = recompute(ex, s.SpotRates)
	}
	return s
}

func recompute(ex data.Exchange, rates models.SpotPrices) data.Exchange {
	ex.Result, ex.Reason = derived.ComputeExchange(ex.From, ex.To, ex.Amount, rates)
	return ex
}

// Search handles the search filter text.
func Search(state interface{}, action boutique.Action) interface{} {
	s := state.(data.State)

	if action.Type == actions.ActSetSearchQuery {
		s.SearchQuery = action.Update.(string)
	}
	return s
}
