// Package services owns the asynchronous side of the dashboard: every
// fetch is issued from here and its completion is serialized into a store
// transition. The store itself stays free of fetch side effects.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/johnsiilver/boutique"
	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/internal/market"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/config"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// spotAssetWindow is how many catalog assets, in catalog order, get spot
// rates fetched for the exchange calculator.
const spotAssetWindow = 20

// SyncService keeps the store in sync with the upstream pricing service.
// It subscribes to the selection fields and refetches whatever the change
// invalidates; completions are applied in completion order, last write
// wins. There is no cancellation of stale in-flight fetches.
type SyncService struct {
	store  *state.Store
	market *market.Service
	logger *logrus.Entry

	catalogRefresh time.Duration
	spotRefresh    time.Duration

	wg      sync.WaitGroup
	cancels []boutique.CancelFunc
}

// NewSyncService creates the sync service.
func NewSyncService(store *state.Store, mkt *market.Service, cfg *config.MarketConfig, logger *logrus.Logger) *SyncService {
	return &SyncService{
		store:          store,
		market:         mkt,
		logger:         logger.WithField("component", "sync"),
		catalogRefresh: cfg.CatalogRefresh,
		spotRefresh:    cfg.SpotRefresh,
	}
}

// Start performs the initial loads and begins watching the store. It
// returns once the watchers are installed; data arrives asynchronously.
func (s *SyncService) Start(ctx context.Context) error {
	currencyCh, cancelCurrency, err := s.store.Subscribe(state.FieldActiveCurrency)
	if err != nil {
		return err
	}
	comparisonCh, cancelComparison, err := s.store.Subscribe(state.FieldComparison)
	if err != nil {
		cancelCurrency()
		return err
	}
	rangeCh, cancelRange, err := s.store.Subscribe(state.FieldChartRangeDays)
	if err != nil {
		cancelCurrency()
		cancelComparison()
		return err
	}
	focusCh, cancelFocus, err := s.store.Subscribe(state.FieldFocusedAsset)
	if err != nil {
		cancelCurrency()
		cancelComparison()
		cancelRange()
		return err
	}
	s.cancels = []boutique.CancelFunc{cancelCurrency, cancelComparison, cancelRange, cancelFocus}

	s.wg.Add(2)
	go s.watch(ctx, currencyCh, comparisonCh, rangeCh, focusCh)
	go s.refreshLoop(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.RefreshCatalog(ctx)
		s.RefreshSpotRates(ctx)
		s.EnsureComparisonSeries(ctx)
	}()

	return nil
}

// Stop cancels the store subscriptions and waits for in-flight work. The
// context passed to Start must already be cancelled.
func (s *SyncService) Stop() {
	for _, cancel := range s.cancels {
		cancel()
	}
	s.wg.Wait()
}

// watch reacts to user-intent transitions observed through the store.
func (s *SyncService) watch(ctx context.Context, currency, comparison, chartRange, focus chan boutique.Signal) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-currency:
			if !ok {
				return
			}
			// A currency switch invalidates prices everywhere: catalog,
			// spot rates, and every chart key in the new currency.
			s.RefreshCatalog(ctx)
			s.RefreshSpotRates(ctx)
			s.EnsureComparisonSeries(ctx)
		case _, ok := <-comparison:
			if !ok {
				return
			}
			s.EnsureComparisonSeries(ctx)
		case _, ok := <-chartRange:
			if !ok {
				return
			}
			s.EnsureComparisonSeries(ctx)
		case _, ok := <-focus:
			if !ok {
				return
			}
			s.refreshFocusedDetail(ctx)
		}
	}
}

// refreshLoop re-fetches the catalog and spot rates on fixed cadences so
// displayed prices stay fresh without user interaction.
func (s *SyncService) refreshLoop(ctx context.Context) {
	defer s.wg.Done()

	catalogTicker := time.NewTicker(s.catalogRefresh)
	spotTicker := time.NewTicker(s.spotRefresh)
	defer catalogTicker.Stop()
	defer spotTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-catalogTicker.C:
			s.RefreshCatalog(ctx)
		case <-spotTicker.C:
			s.RefreshSpotRates(ctx)
		}
	}
}

// RefreshCatalog fetches the catalog for the active currency and swaps it
// in. The fetch is best-effort and never fails; a degraded half arrives
// empty or zeroed.
func (s *SyncService) RefreshCatalog(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	currency := s.store.Snapshot().ActiveCurrency

	if err := s.store.SetCatalogStatus(models.Pending()); err != nil {
		s.logger.WithError(err).Error("Failed to mark catalog pending")
		return
	}

	catalog := s.market.FetchCatalog(ctx, currency)

	if err := s.store.ReplaceCatalog(catalog.Assets, catalog.Aggregates); err != nil {
		s.logger.WithError(err).Error("Failed to commit catalog")
		return
	}
	if err := s.store.SetCatalogStatus(models.Succeeded()); err != nil {
		s.logger.WithError(err).Error("Failed to mark catalog done")
	}

	s.logger.WithFields(logrus.Fields{
		"assets":   len(catalog.Assets),
		"currency": currency,
	}).Debug("Catalog refreshed")
}

// RefreshSpotRates fetches spot rates for the top of the catalog plus both
// calculator sides, across the whole fiat reference set. A failed fetch
// leaves the previous mapping in place rather than wiping it.
func (s *SyncService) RefreshSpotRates(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	st := s.store.Snapshot()

	ids := make([]string, 0, spotAssetWindow+2)
	for i, a := range st.Assets {
		if i == spotAssetWindow {
			break
		}
		ids = append(ids, a.ID)
	}
	for _, side := range []string{st.Exchange.From, st.Exchange.To} {
		if side != "" && !models.IsFiat(side) && !contains(ids, side) {
			ids = append(ids, side)
		}
	}
	if len(ids) == 0 {
		return
	}

	rates := s.market.FetchSpotPrices(ctx, ids, models.SupportedCurrencyCodes())
	if len(rates) == 0 {
		s.logger.Debug("Spot rate fetch returned nothing, keeping previous rates")
		return
	}

	if err := s.store.SetSpotRates(rates); err != nil {
		s.logger.WithError(err).Error("Failed to commit spot rates")
	}
}

// EnsureComparisonSeries requests the chart series of every comparison
// member for the current currency and range, skipping keys that are cached
// or already in flight.
func (s *SyncService) EnsureComparisonSeries(ctx context.Context) {
	st := s.store.Snapshot()
	for _, id := range st.Comparison {
		s.EnsureChartSeries(ctx, id, st.ActiveCurrency, st.ChartRangeDays)
	}
}

// EnsureChartSeries fetches the series for one key unless a result is
// cached or a fetch is pending. The status check before issuing the fetch
// is what suppresses duplicate in-flight requests for the same key.
func (s *SyncService) EnsureChartSeries(ctx context.Context, assetID, currency string, days int) {
	if ctx.Err() != nil {
		return
	}
	key := models.SeriesKey{AssetID: assetID, Currency: currency, Days: days}

	st := s.store.Snapshot()
	if _, cached := st.Charts[key]; cached {
		return
	}
	if s.store.StatusOf(key).Phase == models.FetchPending {
		return
	}

	if err := s.store.SetChartStatus(key, models.Pending()); err != nil {
		s.logger.WithError(err).Error("Failed to mark series pending")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		res := s.market.FetchPriceHistory(ctx, assetID, currency, days)
		if !res.OK {
			if err := s.store.SetChartStatus(key, models.Failed(res.Message, 0)); err != nil {
				s.logger.WithError(err).Error("Failed to record series failure")
			}
			return
		}

		// Applied unconditionally even if the user has navigated away;
		// last write wins per key.
		if err := s.store.UpsertChartSeries(key, res.Series); err != nil {
			s.logger.WithError(err).Error("Failed to commit series")
			return
		}
		if err := s.store.SetChartStatus(key, models.Succeeded()); err != nil {
			s.logger.WithError(err).Error("Failed to mark series done")
		}
	}()
}

// refreshFocusedDetail fetches the detail view for the focused asset. The
// detail fetch has no fallback; failure is surfaced through DetailStatus.
func (s *SyncService) refreshFocusedDetail(ctx context.Context) {
	id := s.store.Snapshot().FocusedAsset
	if id == "" || ctx.Err() != nil {
		return
	}

	if err := s.store.SetDetailStatus(models.Pending()); err != nil {
		s.logger.WithError(err).Error("Failed to mark detail pending")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		detail, err := s.market.FetchAssetDetail(ctx, id)
		if err != nil {
			s.logger.WithError(err).WithField("asset", id).Warn("Detail fetch failed")
			if serr := s.store.SetDetailStatus(models.Failed(err.Error(), 0)); serr != nil {
				s.logger.WithError(serr).Error("Failed to record detail failure")
			}
			return
		}

		if err := s.store.SetFocusedDetail(detail); err != nil {
			s.logger.WithError(err).Error("Failed to commit detail")
			return
		}
		if err := s.store.SetDetailStatus(models.Succeeded()); err != nil {
			s.logger.WithError(err).Error("Failed to mark detail done")
		}
	}()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
