package derived

import (
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/data"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// ComparisonLine is one asset's contribution to the comparison chart. A
// line whose series is not yet cached is marked Pending rather than
// omitted, so a partial chart can render with per-line loading state.
type ComparisonLine struct {
	AssetID string
	Name    string
	Pending bool
	Reason  string
	Points  models.ChartSeries
}

// AssembleComparison resolves the chart series of every comparison member
// for the current currency and range, preserving insertion order so chart
// legends stay stable.
func AssembleComparison(st data.State) []ComparisonLine {
	lines := make([]ComparisonLine, 0, len(st.Comparison))
	for _, id := range st.Comparison {
		name := id
		if a, ok := st.AssetByID(id); ok {
			name = a.Name
		}

		key := models.SeriesKey{AssetID: id, Currency: st.ActiveCurrency, Days: st.ChartRangeDays}
		if points, ok := st.Charts[key]; ok {
			lines = append(lines, ComparisonLine{AssetID: id, Name: name, Points: points})
			continue
		}

		line := ComparisonLine{AssetID: id, Name: name, Pending: true}
		if status, ok := st.ChartStatus[key]; ok && status.Phase == models.FetchFailed {
			line.Pending = false
			line.Reason = status.Reason
		}
		lines = append(lines, line)
	}
	return lines
}
