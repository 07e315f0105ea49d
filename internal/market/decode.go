package market

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// Upstream error messages, keyed by failure class so the UI can show a
// specific diagnostic without inspecting transport internals.
const (
	networkErrorMessage   = "Network connection failed. Please check your internet connection and try again."
	rateLimitErrorMessage = "Too many requests. Please wait a moment and try again."
	serverErrorMessage    = "Server error. The service may be temporarily unavailable."
	unknownErrorMessage   = "Unknown error occurred"
)

// historyErrorMessage selects the user-facing diagnostic for a failed price
// history fetch.
func historyErrorMessage(id string, err error) string {
	kind, ok := gateway.KindOf(err)
	if !ok {
		return unknownErrorMessage
	}
	switch kind {
	case gateway.KindNetworkUnavailable, gateway.KindTimeout:
		return networkErrorMessage
	case gateway.KindRateLimited:
		return rateLimitErrorMessage
	case gateway.KindServerError:
		return serverErrorMessage
	case gateway.KindNotFound:
		return fmt.Sprintf("Cryptocurrency %q not found.", id)
	default:
		return unknownErrorMessage
	}
}

// assetDetailPayload is the wire shape of the asset detail endpoint. Only
// the consumed fields are declared; everything else is dropped at this
// boundary rather than carried inward untyped.
type assetDetailPayload struct {
	ID          string `json:"id"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description struct {
		EN string `json:"en"`
	} `json:"description"`
	Image struct {
		Large string `json:"large"`
	} `json:"image"`
	MarketCapRank int `json:"market_cap_rank"`
	MarketData    struct {
		CurrentPrice          map[string]float64 `json:"current_price"`
		MarketCap             map[string]float64 `json:"market_cap"`
		High24h               map[string]float64 `json:"high_24h"`
		Low24h                map[string]float64 `json:"low_24h"`
		ATH                   map[string]float64 `json:"ath"`
		ATL                   map[string]float64 `json:"atl"`
		PriceChangePercent24h float64            `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

func decodeAssetDetail(raw json.RawMessage) (*models.AssetDetail, error) {
	var p assetDetailPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, fmt.Errorf("detail payload missing asset id")
	}
	return &models.AssetDetail{
		ID:                    p.ID,
		Symbol:                p.Symbol,
		Name:                  p.Name,
		Description:           p.Description.EN,
		Image:                 p.Image.Large,
		CurrentPrice:          p.MarketData.CurrentPrice,
		MarketCap:             p.MarketData.MarketCap,
		High24h:               p.MarketData.High24h,
		Low24h:                p.MarketData.Low24h,
		ATH:                   p.MarketData.ATH,
		ATL:                   p.MarketData.ATL,
		PriceChangePercent24h: p.MarketData.PriceChangePercent24h,
		MarketCapRank:         p.MarketCapRank,
	}, nil
}

// decodeChartSeries maps the upstream market-chart payload, a sequence of
// [unix-millis, price] pairs, into an ordered series. Pairs with the wrong
// arity are rejected as a malformed shape.
func decodeChartSeries(raw json.RawMessage) (models.ChartSeries, error) {
	var payload struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	series := make(models.ChartSeries, 0, len(payload.Prices))
	for i, pair := range payload.Prices {
		if len(pair) != 2 {
			return nil, fmt.Errorf("price point %d has %d elements, want 2", i, len(pair))
		}
		series = append(series, models.PricePoint{
			Timestamp: time.UnixMilli(int64(pair[0])),
			Price:     pair[1],
		})
	}
	return series, nil
}
