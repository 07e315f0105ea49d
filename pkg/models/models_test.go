package models

import "testing"

func TestSpotPricesRate(t *testing.T) {
	rates := SpotPrices{
		"bitcoin": {"usd": 50000, "eur": 0},
	}

	tests := []struct {
		name     string
		asset    string
		currency string
		wantRate float64
		wantOK   bool
	}{
		{"known quote", "bitcoin", "usd", 50000, true},
		{"zero quote rejected", "bitcoin", "eur", 0, false},
		{"missing currency", "bitcoin", "gbp", 0, false},
		{"missing asset", "dogecoin", "usd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, ok := rates.Rate(tt.asset, tt.currency)
			if rate != tt.wantRate || ok != tt.wantOK {
				t.Errorf("Rate(%s, %s) = %v, %t; want %v, %t",
					tt.asset, tt.currency, rate, ok, tt.wantRate, tt.wantOK)
			}
		})
	}
}

func TestIsFiat(t *testing.T) {
	for _, code := range SupportedCurrencyCodes() {
		if !IsFiat(code) {
			t.Errorf("IsFiat(%s) = false for a supported currency", code)
		}
	}
	if IsFiat("bitcoin") {
		t.Error("IsFiat(bitcoin) = true, want asset ids treated as non-fiat")
	}
	if IsFiat("USD") {
		t.Error("IsFiat(USD) = true, want codes matched lowercase only")
	}
}

func TestZeroAggregates(t *testing.T) {
	aggs := ZeroAggregates("eur")
	if v, ok := aggs.TotalMarketCap["eur"]; !ok || v != 0 {
		t.Errorf("TotalMarketCap = %v, want zeroed eur entry", aggs.TotalMarketCap)
	}
	if aggs.MarketCapPercentage == nil || len(aggs.MarketCapPercentage) != 0 {
		t.Errorf("MarketCapPercentage = %v, want empty non-nil map", aggs.MarketCapPercentage)
	}
}

func TestFetchPhaseString(t *testing.T) {
	tests := []struct {
		phase FetchPhase
		want  string
	}{
		{FetchIdle, "idle"},
		{FetchPending, "pending"},
		{FetchSucceeded, "succeeded"},
		{FetchFailed, "failed"},
		{FetchPhase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("FetchPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}
