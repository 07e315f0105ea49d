package models

// SpotPrices maps asset id -> currency code -> current exchange rate, the
// shape of the upstream simple-price endpoint. An empty map is a valid
// result: callers must treat "no rate available" as non-fatal.
type SpotPrices map[string]map[string]float64

// Rate looks up the spot price of an asset in the given currency.
func (s SpotPrices) Rate(assetID, currency string) (float64, bool) {
	quotes, ok := s[assetID]
	if !ok {
		return 0, false
	}
	rate, ok := quotes[currency]
	if !ok || rate <= 0 {
		return 0, false
	}
	return rate, true
}
