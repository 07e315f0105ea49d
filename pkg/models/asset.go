package models

// Asset is a single tradable asset as reported by the upstream ranked
// catalog. A snapshot is immutable once fetched; refreshes replace the
// whole catalog rather than merging into it.
type Asset struct {
	ID                    string   `json:"id"`
	Symbol                string   `json:"symbol"`
	Name                  string   `json:"name"`
	CurrentPrice          float64  `json:"current_price"`
	MarketCap             float64  `json:"market_cap"`
	Volume24h             float64  `json:"total_volume"`
	CirculatingSupply     float64  `json:"circulating_supply"`
	MaxSupply             *float64 `json:"max_supply"`
	PriceChangePercent24h float64  `json:"price_change_percentage_24h"`
	MarketCapRank         int      `json:"market_cap_rank"`
	Image                 string   `json:"image"`
}

// MarketAggregates holds the global market statistics that accompany the
// catalog. Values are keyed by currency code the way upstream reports them.
type MarketAggregates struct {
	TotalMarketCap      map[string]float64 `json:"total_market_cap"`
	TotalVolume         map[string]float64 `json:"total_volume"`
	MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
}

// ZeroAggregates returns the degraded aggregates used when the global
// statistics call fails: zeroed totals for the requested currency and no
// dominance data.
func ZeroAggregates(currency string) MarketAggregates {
	return MarketAggregates{
		TotalMarketCap:      map[string]float64{currency: 0},
		TotalVolume:         map[string]float64{currency: 0},
		MarketCapPercentage: map[string]float64{},
	}
}

// Catalog is the merged result of the ranked asset list and the global
// aggregates. Either half may be degraded independently of the other.
type Catalog struct {
	Assets     []Asset
	Aggregates MarketAggregates
}

// AssetDetail is the expanded view of a single asset from the detail
// endpoint. Price-like fields are keyed by currency code.
type AssetDetail struct {
	ID                    string
	Symbol                string
	Name                  string
	Description           string
	Image                 string
	CurrentPrice          map[string]float64
	MarketCap             map[string]float64
	High24h               map[string]float64
	Low24h                map[string]float64
	ATH                   map[string]float64
	ATL                   map[string]float64
	PriceChangePercent24h float64
	MarketCapRank         int
}

// SearchHit is one row of the upstream search endpoint.
type SearchHit struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	Thumb         string `json:"thumb"`
}
