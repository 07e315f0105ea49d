// Package derived recomputes values that depend on store state: the
// exchange calculator, the search filter, and the comparison chart
// assembly. Everything here is pure and deterministic so it can run
// synchronously inside state transitions.
package derived

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// amountPattern accepts digits with at most one decimal point, including
// incomplete input like "", "12." and ".5".
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// ValidAmount reports whether raw is acceptable calculator input. Anything
// else is rejected at the keystroke and the previous amount retained.
func ValidAmount(raw string) bool {
	return amountPattern.MatchString(raw)
}

// ComputeExchange evaluates amount units of from expressed in to, at full
// decimal precision, truncated to 8 fractional digits for display. An empty
// result with an empty reason means there is simply nothing to compute yet;
// an empty result with a reason means a required rate is unavailable.
func ComputeExchange(from, to, amount string, rates models.SpotPrices) (result, reason string) {
	amt, ok := parseAmount(amount)
	if !ok {
		return "", ""
	}

	fromUnit, ok := unitValue(from, rates)
	if !ok {
		return "", fmt.Sprintf("Exchange rate unavailable for %s.", from)
	}
	toUnit, ok := unitValue(to, rates)
	if !ok {
		return "", fmt.Sprintf("Exchange rate unavailable for %s.", to)
	}

	value := amt.Mul(fromUnit).Div(toUnit)
	return value.Truncate(8).StringFixed(8), ""
}

// parseAmount turns permissive raw input into a decimal. Incomplete input
// ("", ".") yields no value without being an error.
func parseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" || raw == "." {
		return decimal.Decimal{}, false
	}
	norm := raw
	if strings.HasPrefix(norm, ".") {
		norm = "0" + norm
	}
	norm = strings.TrimSuffix(norm, ".")
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// unitValue resolves the value of one unit of code in base-currency terms.
// An asset id resolves directly from its spot quote; a fiat resolves via the
// cross rate of any asset quoted in both the fiat and the base currency.
func unitValue(code string, rates models.SpotPrices) (decimal.Decimal, bool) {
	if !models.IsFiat(code) {
		rate, ok := rates.Rate(code, models.DefaultCurrency)
		if !ok {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(rate), true
	}

	if code == models.DefaultCurrency {
		return decimal.NewFromInt(1), true
	}

	// Deterministic: scan asset ids in sorted order.
	ids := make([]string, 0, len(rates))
	for id := range rates {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		base, okBase := rates.Rate(id, models.DefaultCurrency)
		quote, okQuote := rates.Rate(id, code)
		if okBase && okQuote {
			return decimal.NewFromFloat(base).Div(decimal.NewFromFloat(quote)), true
		}
	}
	return decimal.Decimal{}, false
}
