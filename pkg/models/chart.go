package models

import "time"

// PricePoint is one sample of a price history series.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// ChartSeries is an ordered price history. Entries in the chart cache are
// immutable once written; a refresh writes a new series under a new key.
type ChartSeries []PricePoint

// SeriesKey identifies one cached chart series. Resolution of the points is
// upstream's choice based on the range length, so it is not part of the key.
type SeriesKey struct {
	AssetID  string
	Currency string
	Days     int
}

// ChartRanges are the selectable history ranges, in days.
var ChartRanges = []int{7, 30, 90, 365}

// DefaultChartRange is the range shown before the user picks one.
const DefaultChartRange = 7
