package market

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/sirupsen/logrus"

	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/config"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// newTestService points the service at a stub upstream with pacing disabled.
func newTestService(handler http.Handler) (*Service, *httptest.Server) {
	srv := httptest.NewServer(handler)

	log := logrus.New()
	log.SetOutput(io.Discard)

	gw := gateway.NewClient(&config.APIConfig{BaseURL: srv.URL}, log)
	s := NewService(gw, log)
	s.pace = 0
	s.historyPace = 0
	return s, srv
}

const assetListBody = `[
	{"id":"bitcoin","symbol":"btc","name":"Bitcoin","current_price":50000,"market_cap":1000000,"total_volume":50000,"circulating_supply":19000000,"max_supply":21000000,"price_change_percentage_24h":2.5,"market_cap_rank":1,"image":"https://img/btc.png"},
	{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3000,"market_cap":400000,"total_volume":20000,"circulating_supply":120000000,"max_supply":null,"price_change_percentage_24h":-1.2,"market_cap_rank":2,"image":"https://img/eth.png"}
]`

const globalBody = `{"data":{
	"total_market_cap":{"usd":1500000},
	"total_volume":{"usd":80000},
	"market_cap_percentage":{"btc":48.5,"eth":17.2}
}}`

func TestFetchCatalog(t *testing.T) {
	tests := []struct {
		name          string
		marketsStatus int
		globalStatus  int
		wantAssets    int
		wantMarketCap float64
		wantDominance float64
	}{
		{"both succeed", http.StatusOK, http.StatusOK, 2, 1500000, 48.5},
		{"asset list fails", http.StatusInternalServerError, http.StatusOK, 0, 1500000, 48.5},
		{"global stats fail", http.StatusOK, http.StatusInternalServerError, 2, 0, 0},
		{"both fail", http.StatusInternalServerError, http.StatusInternalServerError, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Path {
				case "/coins/markets":
					w.WriteHeader(tt.marketsStatus)
					if tt.marketsStatus == http.StatusOK {
						w.Write([]byte(assetListBody))
					}
				case "/global":
					w.WriteHeader(tt.globalStatus)
					if tt.globalStatus == http.StatusOK {
						w.Write([]byte(globalBody))
					}
				default:
					t.Errorf("unexpected path %s", r.URL.Path)
				}
			}))
			defer srv.Close()

			catalog := s.FetchCatalog(context.Background(), "usd")

			if len(catalog.Assets) != tt.wantAssets {
				t.Errorf("len(Assets) = %d, want %d", len(catalog.Assets), tt.wantAssets)
			}
			if catalog.Assets == nil {
				t.Error("Assets is nil, want non-nil slice even when degraded")
			}
			if got := catalog.Aggregates.TotalMarketCap["usd"]; got != tt.wantMarketCap {
				t.Errorf("TotalMarketCap[usd] = %v, want %v", got, tt.wantMarketCap)
			}
			if got := catalog.Aggregates.MarketCapPercentage["btc"]; got != tt.wantDominance {
				t.Errorf("MarketCapPercentage[btc] = %v, want %v", got, tt.wantDominance)
			}
		})
	}
}

func TestFetchCatalogDecodesAssets(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/coins/markets" {
			if got := r.URL.Query().Get("vs_currency"); got != "eur" {
				t.Errorf("vs_currency = %q, want eur", got)
			}
			w.Write([]byte(assetListBody))
			return
		}
		w.Write([]byte(globalBody))
	}))
	defer srv.Close()

	catalog := s.FetchCatalog(context.Background(), "eur")
	if len(catalog.Assets) != 2 {
		t.Fatalf("len(Assets) = %d, want 2", len(catalog.Assets))
	}

	btc := catalog.Assets[0]
	if btc.ID != "bitcoin" || btc.CurrentPrice != 50000 || btc.MarketCapRank != 1 {
		t.Errorf("first asset = %+v, want decoded bitcoin row", btc)
	}
	if btc.MaxSupply == nil || *btc.MaxSupply != 21000000 {
		t.Errorf("bitcoin MaxSupply = %v, want 21000000", btc.MaxSupply)
	}
	if catalog.Assets[1].MaxSupply != nil {
		t.Errorf("ethereum MaxSupply = %v, want nil for null supply", catalog.Assets[1].MaxSupply)
	}
}

func TestFetchAssetDetail(t *testing.T) {
	body := `{
		"id":"bitcoin","symbol":"btc","name":"Bitcoin",
		"description":{"en":"Digital gold."},
		"image":{"large":"https://img/btc-large.png"},
		"market_cap_rank":1,
		"market_data":{
			"current_price":{"usd":50000,"eur":45000},
			"market_cap":{"usd":1000000},
			"high_24h":{"usd":51000},
			"low_24h":{"usd":49000},
			"ath":{"usd":69000},
			"atl":{"usd":67.81},
			"price_change_percentage_24h":2.5
		}
	}`
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coins/bitcoin" {
			t.Errorf("path = %s, want /coins/bitcoin", r.URL.Path)
		}
		w.Write([]byte(body))
	}))
	defer srv.Close()

	detail, err := s.FetchAssetDetail(context.Background(), "bitcoin")
	if err != nil {
		t.Fatalf("FetchAssetDetail() error = %v", err)
	}

	want := &models.AssetDetail{
		ID:                    "bitcoin",
		Symbol:                "btc",
		Name:                  "Bitcoin",
		Description:           "Digital gold.",
		Image:                 "https://img/btc-large.png",
		CurrentPrice:          map[string]float64{"usd": 50000, "eur": 45000},
		MarketCap:             map[string]float64{"usd": 1000000},
		High24h:               map[string]float64{"usd": 51000},
		Low24h:                map[string]float64{"usd": 49000},
		ATH:                   map[string]float64{"usd": 69000},
		ATL:                   map[string]float64{"usd": 67.81},
		PriceChangePercent24h: 2.5,
		MarketCapRank:         1,
	}
	if diff := pretty.Compare(detail, want); diff != "" {
		t.Errorf("detail mismatch: -got +want\n%s", diff)
	}
}

func TestFetchAssetDetailPropagatesFailure(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := s.FetchAssetDetail(context.Background(), "bitcoin"); err == nil {
		t.Fatal("FetchAssetDetail() = nil error, want propagated failure")
	}
}

func TestFetchAssetDetailRejectsEmptyPayload(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	if _, err := s.FetchAssetDetail(context.Background(), "bitcoin"); err == nil {
		t.Fatal("FetchAssetDetail() accepted a payload without an asset id")
	}
}

func TestFetchPriceHistory(t *testing.T) {
	body := `{"prices":[[1700000000000,50000.5],[1700003600000,50100.25]]}`
	var gotInterval string
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotInterval = r.URL.Query().Get("interval")
		w.Write([]byte(body))
	}))
	defer srv.Close()

	res := s.FetchPriceHistory(context.Background(), "bitcoin", "usd", 7)
	if !res.OK {
		t.Fatalf("FetchPriceHistory() failed: %s", res.Message)
	}
	if gotInterval != "hourly" {
		t.Errorf("interval for 7 days = %q, want hourly", gotInterval)
	}
	if len(res.Series) != 2 {
		t.Fatalf("len(Series) = %d, want 2", len(res.Series))
	}
	if res.Series[0].Price != 50000.5 {
		t.Errorf("Series[0].Price = %v, want 50000.5", res.Series[0].Price)
	}
	if got := res.Series[0].Timestamp.UnixMilli(); got != 1700000000000 {
		t.Errorf("Series[0].Timestamp = %d ms, want 1700000000000", got)
	}

	s.FetchPriceHistory(context.Background(), "bitcoin", "usd", 90)
	if gotInterval != "daily" {
		t.Errorf("interval for 90 days = %q, want daily", gotInterval)
	}
}

func TestFetchPriceHistoryFailureMessages(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"server error", http.StatusInternalServerError, "", serverErrorMessage},
		{"not found", http.StatusNotFound, "", `Cryptocurrency "dogecoin" not found.`},
		{"malformed pair", http.StatusOK, `{"prices":[[1700000000000]]}`, unknownErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			}))
			defer srv.Close()

			res := s.FetchPriceHistory(context.Background(), "dogecoin", "usd", 7)
			if res.OK {
				t.Fatal("FetchPriceHistory() = OK, want structured failure")
			}
			if res.Series == nil || len(res.Series) != 0 {
				t.Errorf("Series = %v, want empty non-nil series", res.Series)
			}
			if res.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", res.Message, tt.wantMsg)
			}
		})
	}
}

func TestHistoryErrorMessageByClass(t *testing.T) {
	tests := []struct {
		kind gateway.Kind
		want string
	}{
		{gateway.KindNetworkUnavailable, networkErrorMessage},
		{gateway.KindTimeout, networkErrorMessage},
		{gateway.KindRateLimited, rateLimitErrorMessage},
		{gateway.KindServerError, serverErrorMessage},
		{gateway.KindNotFound, `Cryptocurrency "bitcoin" not found.`},
	}

	for _, tt := range tests {
		got := historyErrorMessage("bitcoin", &gateway.Error{Kind: tt.kind})
		if got != tt.want {
			t.Errorf("historyErrorMessage(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFetchSpotPrices(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "bitcoin,ethereum" {
			t.Errorf("ids = %q, want bitcoin,ethereum", got)
		}
		w.Write([]byte(`{"bitcoin":{"usd":50000,"eur":45000},"ethereum":{"usd":3000}}`))
	}))
	defer srv.Close()

	rates := s.FetchSpotPrices(context.Background(), []string{"bitcoin", "ethereum"}, []string{"usd", "eur"})
	if rate, ok := rates.Rate("bitcoin", "eur"); !ok || rate != 45000 {
		t.Errorf("Rate(bitcoin, eur) = %v, %t; want 45000, true", rate, ok)
	}
	if _, ok := rates.Rate("ethereum", "eur"); ok {
		t.Error("Rate(ethereum, eur) reported a rate that was not returned")
	}
}

func TestFetchSpotPricesDegrades(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rates := s.FetchSpotPrices(context.Background(), []string{"bitcoin"}, []string{"usd"})
	if rates == nil || len(rates) != 0 {
		t.Errorf("FetchSpotPrices() on failure = %v, want empty mapping", rates)
	}

	if got := s.FetchSpotPrices(context.Background(), nil, []string{"usd"}); len(got) != 0 {
		t.Errorf("FetchSpotPrices() with no ids = %v, want empty mapping without a call", got)
	}
}

func TestSearchAssets(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "bit" {
			t.Errorf("query = %q, want bit", got)
		}
		w.Write([]byte(`{"coins":[{"id":"bitcoin","symbol":"btc","name":"Bitcoin","market_cap_rank":1,"thumb":"https://img/btc-thumb.png"}]}`))
	}))
	defer srv.Close()

	hits := s.SearchAssets(context.Background(), "bit")
	if len(hits) != 1 || hits[0].ID != "bitcoin" {
		t.Errorf("SearchAssets() = %+v, want single bitcoin hit", hits)
	}
}

func TestSearchAssetsDegrades(t *testing.T) {
	s, srv := newTestService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	hits := s.SearchAssets(context.Background(), "bit")
	if hits == nil || len(hits) != 0 {
		t.Errorf("SearchAssets() on failure = %v, want empty slice", hits)
	}
}
