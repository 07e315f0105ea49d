package derived

import (
	"fmt"
	"testing"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

func TestFilterAssets(t *testing.T) {
	catalog := []models.Asset{
		{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"},
		{ID: "ethereum", Symbol: "eth", Name: "Ethereum"},
		{ID: "bitcoin-cash", Symbol: "bch", Name: "Bitcoin Cash"},
		{ID: "dogecoin", Symbol: "doge", Name: "Dogecoin"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring", "bit", []string{"bitcoin", "bitcoin-cash"}},
		{"case insensitive", "BIT", []string{"bitcoin", "bitcoin-cash"}},
		{"symbol match", "doge", []string{"dogecoin"}},
		{"symbol only", "eth", []string{"ethereum"}},
		{"whitespace trimmed", "  bit  ", []string{"bitcoin", "bitcoin-cash"}},
		{"no match", "zzz", []string{}},
		{"empty returns catalog order", "", []string{"bitcoin", "ethereum", "bitcoin-cash", "dogecoin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAssets(catalog, tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterAssets(%q) returned %d assets, want %d", tt.query, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("result[%d] = %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFilterAssetsCapped(t *testing.T) {
	catalog := make([]models.Asset, 0, maxSearchResults+10)
	for i := 0; i < maxSearchResults+10; i++ {
		catalog = append(catalog, models.Asset{
			ID:   fmt.Sprintf("coin-%d", i),
			Name: fmt.Sprintf("Coin %d", i),
		})
	}

	got := FilterAssets(catalog, "coin")
	if len(got) != maxSearchResults {
		t.Errorf("len = %d, want cap of %d", len(got), maxSearchResults)
	}
	if got[0].ID != "coin-0" {
		t.Errorf("result[0] = %s, want catalog head coin-0", got[0].ID)
	}
}
