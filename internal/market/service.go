package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// Pacing delays inserted before every upstream call, on top of the gateway's
// own retry backoff, to stay under the informal upstream rate budget.
const (
	paceDelay        = 200 * time.Millisecond
	historyPaceDelay = 300 * time.Millisecond

	catalogPageSize = 50
)

// Service exposes the typed market-data fetch operations. Each operation
// defines its own partial-failure fallback so a caller-visible result is
// always produced, except the detail fetch which propagates its error.
type Service struct {
	gw     *gateway.Client
	logger *logrus.Entry

	pace        time.Duration
	historyPace time.Duration
}

// NewService creates a new market data service.
func NewService(gw *gateway.Client, logger *logrus.Logger) *Service {
	return &Service{
		gw:          gw,
		logger:      logger.WithField("component", "market"),
		pace:        paceDelay,
		historyPace: historyPaceDelay,
	}
}

// pauseBefore applies the pre-call pacing delay, honoring cancellation.
func (s *Service) pauseBefore(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

// FetchCatalog fetches the ranked asset list and the global market
// statistics as two independent concurrent calls, waiting for both. Each
// outcome is inspected on its own: a failed list yields an empty catalog, a
// failed statistics call yields zeroed aggregates. This fetcher never
// returns an error.
func (s *Service) FetchCatalog(ctx context.Context, currency string) models.Catalog {
	s.pauseBefore(ctx, s.pace)

	var (
		wg         sync.WaitGroup
		assets     []models.Asset
		aggregates = models.ZeroAggregates(currency)
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		rows, err := s.fetchAssetList(ctx, currency)
		if err != nil {
			s.logger.WithError(err).Warn("Asset list fetch failed, degrading to empty catalog")
			return
		}
		assets = rows
	}()
	go func() {
		defer wg.Done()
		aggs, err := s.fetchGlobalStats(ctx)
		if err != nil {
			s.logger.WithError(err).Warn("Global stats fetch failed, degrading to zeroed aggregates")
			return
		}
		aggregates = aggs
	}()
	wg.Wait()

	if assets == nil {
		assets = []models.Asset{}
	}
	return models.Catalog{Assets: assets, Aggregates: aggregates}
}

func (s *Service) fetchAssetList(ctx context.Context, currency string) ([]models.Asset, error) {
	params := url.Values{}
	params.Set("vs_currency", currency)
	params.Set("order", "market_cap_desc")
	params.Set("per_page", strconv.Itoa(catalogPageSize))
	params.Set("page", "1")
	params.Set("sparkline", "false")
	params.Set("price_change_percentage", "24h")

	raw, err := s.gw.Request(ctx, "/coins/markets", params)
	if err != nil {
		return nil, err
	}

	var rows []models.Asset
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode asset list: %w", err)
	}
	return rows, nil
}

func (s *Service) fetchGlobalStats(ctx context.Context) (models.MarketAggregates, error) {
	raw, err := s.gw.Request(ctx, "/global", nil)
	if err != nil {
		return models.MarketAggregates{}, err
	}

	var payload struct {
		Data models.MarketAggregates `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.MarketAggregates{}, fmt.Errorf("failed to decode global stats: %w", err)
	}
	return payload.Data, nil
}

// FetchAssetDetail fetches the expanded view of one asset. There is no
// fallback: a detail view without data is not useful, so failures propagate.
func (s *Service) FetchAssetDetail(ctx context.Context, id string) (*models.AssetDetail, error) {
	s.pauseBefore(ctx, s.pace)

	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("market_data", "true")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")
	params.Set("sparkline", "false")

	raw, err := s.gw.Request(ctx, "/coins/"+id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch detail for %s: %w", id, err)
	}

	detail, err := decodeAssetDetail(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode detail for %s: %w", id, err)
	}
	return detail, nil
}

// HistoryResult is the structured outcome of a price history fetch. On
// failure OK is false, Series is empty, and Message carries a user-facing
// diagnostic selected by failure class.
type HistoryResult struct {
	OK      bool
	Series  models.ChartSeries
	Message string
}

// FetchPriceHistory fetches the price series for one asset over the given
// range. Point resolution is upstream's choice based on the range length
// (over 30 days is daily, shorter ranges are finer) and is passed through
// as-is. This fetcher never returns an error; failures produce a structured
// result instead.
func (s *Service) FetchPriceHistory(ctx context.Context, id, currency string, days int) HistoryResult {
	s.pauseBefore(ctx, s.historyPace)

	interval := "hourly"
	if days > 30 {
		interval = "daily"
	}

	params := url.Values{}
	params.Set("vs_currency", currency)
	params.Set("days", strconv.Itoa(days))
	params.Set("interval", interval)

	raw, err := s.gw.Request(ctx, "/coins/"+id+"/market_chart", params)
	if err != nil {
		s.logger.WithError(err).WithField("asset", id).Warn("Price history fetch failed")
		return HistoryResult{Series: models.ChartSeries{}, Message: historyErrorMessage(id, err)}
	}

	series, err := decodeChartSeries(raw)
	if err != nil {
		s.logger.WithError(err).WithField("asset", id).Warn("Price history payload rejected")
		return HistoryResult{Series: models.ChartSeries{}, Message: unknownErrorMessage}
	}
	return HistoryResult{OK: true, Series: series}
}

// FetchSpotPrices fetches current exchange rates for the given assets in the
// given currencies. On any failure it returns an empty mapping; callers must
// treat a missing rate as a valid, non-fatal outcome.
func (s *Service) FetchSpotPrices(ctx context.Context, ids, currencies []string) models.SpotPrices {
	if len(ids) == 0 || len(currencies) == 0 {
		return models.SpotPrices{}
	}
	s.pauseBefore(ctx, s.pace)

	params := url.Values{}
	params.Set("ids", strings.Join(ids, ","))
	params.Set("vs_currencies", strings.Join(currencies, ","))

	raw, err := s.gw.Request(ctx, "/simple/price", params)
	if err != nil {
		s.logger.WithError(err).Warn("Spot price fetch failed, degrading to empty mapping")
		return models.SpotPrices{}
	}

	var rates models.SpotPrices
	if err := json.Unmarshal(raw, &rates); err != nil {
		s.logger.WithError(err).Warn("Spot price payload rejected, degrading to empty mapping")
		return models.SpotPrices{}
	}
	return rates
}

// SearchAssets queries the upstream search endpoint. Degrades to an empty
// slice on failure.
func (s *Service) SearchAssets(ctx context.Context, query string) []models.SearchHit {
	s.pauseBefore(ctx, s.pace)

	params := url.Values{}
	params.Set("query", query)

	raw, err := s.gw.Request(ctx, "/search", params)
	if err != nil {
		s.logger.WithError(err).Warn("Search fetch failed, degrading to empty result")
		return []models.SearchHit{}
	}

	var payload struct {
		Coins []models.SearchHit `json:"coins"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.logger.WithError(err).Warn("Search payload rejected, degrading to empty result")
		return []models.SearchHit{}
	}
	return payload.Coins
}
