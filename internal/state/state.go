// Package state holds the synchronization store: the single authoritative
// snapshot of catalog, selection, chart cache and exchange calculator
// state. Mutation happens only through the named transitions below, each of
// which commits atomically; fetch side effects live in the sync service,
// never here.
package state

import (
	"github.com/johnsiilver/boutique"

	"github.com/carry9637/cryptocurrency-dashboard/internal/state/actions"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/data"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/modifiers"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// Subscribable field names. Subscriptions are the explicit observer
// mechanism the sync service and presentation layer react to.
const (
	FieldAssets         = "Assets"
	FieldActiveCurrency = "ActiveCurrency"
	FieldFocusedAsset   = "FocusedAsset"
	FieldComparison     = "Comparison"
	FieldChartRangeDays = "ChartRangeDays"
	FieldCharts         = "Charts"
	FieldSpotRates      = "SpotRates"
	FieldExchange       = "Exchange"
)

// DefaultExchangeFrom is the calculator's initial from side.
const DefaultExchangeFrom = "bitcoin"

// Store wraps the boutique container with the fixed transition set. It is
// injectable: whoever needs it receives it by reference, there is no
// ambient singleton.
type Store struct {
	b *boutique.Store
}

// New creates a store with the initial snapshot for the given base
// currency.
func New(baseCurrency string) (*Store, error) {
	initial := data.State{
		Assets:         []models.Asset{},
		ActiveCurrency: baseCurrency,
		Comparison:     []string{},
		ChartRangeDays: models.DefaultChartRange,
		Charts:         map[models.SeriesKey]models.ChartSeries{},
		ChartStatus:    map[models.SeriesKey]models.FetchStatus{},
		SpotRates:      models.SpotPrices{},
		Exchange: data.Exchange{
			From: DefaultExchangeFrom,
			To:   baseCurrency,
		},
	}

	b, err := boutique.New(initial, modifiers.All, nil)
	if err != nil {
		return nil, err
	}
	return &Store{b: b}, nil
}

// Snapshot returns the current state. The returned value is a copy; holding
// it never observes later transitions.
func (s *Store) Snapshot() data.State {
	return s.b.State().Data.(data.State)
}

// Version returns the store's current commit version.
func (s *Store) Version() uint64 {
	return s.b.State().Version
}

// Subscribe registers for change signals on one field, or boutique.Any for
// every commit. Cancel the subscription when done.
func (s *Store) Subscribe(field string) (chan boutique.Signal, boutique.CancelFunc, error) {
	return s.b.Subscribe(field)
}

// ReplaceCatalog wholesale-swaps the catalog. A focused asset missing from
// the new page keeps its focus; it is an id reference, not invalidated by
// pagination.
func (s *Store) ReplaceCatalog(assets []models.Asset, aggregates models.MarketAggregates) error {
	return s.b.Perform(actions.ReplaceCatalog(assets, aggregates))
}

// SetCatalogStatus records the catalog fetch lifecycle.
func (s *Store) SetCatalogStatus(status models.FetchStatus) error {
	return s.b.Perform(actions.SetCatalogStatus(status))
}

// SetFocusedAsset focuses an asset. Membership in the comparison set is an
// independent concern and is not validated here.
func (s *Store) SetFocusedAsset(id string) error {
	return s.b.Perform(actions.SetFocusedAsset(id))
}

// SetFocusedDetail stores a fetched detail snapshot.
func (s *Store) SetFocusedDetail(detail *models.AssetDetail) error {
	return s.b.Perform(actions.SetFocusedDetail(detail))
}

// SetDetailStatus records the detail fetch lifecycle.
func (s *Store) SetDetailStatus(status models.FetchStatus) error {
	return s.b.Perform(actions.SetDetailStatus(status))
}

// ToggleComparisonMember adds id to the comparison set, or removes it when
// already present. Adding beyond capacity is a silent no-op.
func (s *Store) ToggleComparisonMember(id string) error {
	return s.b.Perform(actions.ToggleComparisonMember(id))
}

// SetActiveCurrency switches the quote currency. No refetch happens here;
// the sync service observes the change and refetches.
func (s *Store) SetActiveCurrency(code string) error {
	return s.b.Perform(actions.SetActiveCurrency(code))
}

// SetChartRange switches the chart history range in days.
func (s *Store) SetChartRange(days int) error {
	return s.b.Perform(actions.SetChartRange(days))
}

// UpsertChartSeries writes a chart cache entry. Callers are expected to
// check StatusOf before issuing a fetch for a key; the store does not
// deduplicate fetch issuance itself.
func (s *Store) UpsertChartSeries(key models.SeriesKey, points models.ChartSeries) error {
	return s.b.Perform(actions.UpsertChartSeries(key, points))
}

// SetChartStatus records a fetch status for one series key.
func (s *Store) SetChartStatus(key models.SeriesKey, status models.FetchStatus) error {
	return s.b.Perform(actions.SetChartStatus(key, status))
}

// StatusOf reports the fetch status of one chart series key.
func (s *Store) StatusOf(key models.SeriesKey) models.FetchStatus {
	status, ok := s.Snapshot().ChartStatus[key]
	if !ok {
		return models.FetchStatus{Phase: models.FetchIdle}
	}
	return status
}

// SetSpotRates replaces the spot price mapping and recomputes the exchange
// result before returning.
func (s *Store) SetSpotRates(rates models.SpotPrices) error {
	return s.b.Perform(actions.SetSpotRates(rates))
}

// SetExchangeInputs updates the calculator inputs and recomputes the result
// synchronously: a read immediately after this call observes the derived
// state. Invalid amounts are rejected and the previous valid amount kept.
func (s *Store) SetExchangeInputs(from, to, amount string) error {
	return s.b.Perform(actions.SetExchangeInputs(from, to, amount))
}

// SwapExchange swaps the calculator's from and to sides.
func (s *Store) SwapExchange() error {
	return s.b.Perform(actions.SwapExchange())
}

// SetSearchQuery updates the search filter text.
func (s *Store) SetSearchQuery(query string) error {
	return s.b.Perform(actions.SetSearchQuery(query))
}
