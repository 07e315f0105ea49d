package models

// DefaultCurrency is the base quote currency used until the user picks
// another one.
const DefaultCurrency = "usd"

// Currency is one supported fiat quote currency. The set is a static
// reference loaded at process start and never mutated.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var supportedCurrencies = []Currency{
	{Code: "usd", Name: "US Dollar", Symbol: "$"},
	{Code: "eur", Name: "Euro", Symbol: "€"},
	{Code: "gbp", Name: "British Pound", Symbol: "£"},
	{Code: "jpy", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "inr", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "cad", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "aud", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "chf", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "cny", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "krw", Name: "South Korean Won", Symbol: "₩"},
}

// SupportedCurrencies returns a copy of the static fiat reference set.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// SupportedCurrencyCodes returns the codes of the fiat reference set, in
// display order.
func SupportedCurrencyCodes() []string {
	codes := make([]string, len(supportedCurrencies))
	for i, c := range supportedCurrencies {
		codes[i] = c.Code
	}
	return codes
}

// IsFiat reports whether code belongs to the fiat reference set. Anything
// else is treated as an asset id.
func IsFiat(code string) bool {
	for _, c := range supportedCurrencies {
		if c.Code == code {
			return true
		}
	}
	return false
}
