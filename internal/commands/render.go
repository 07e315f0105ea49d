package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/carry9637/cryptocurrency-dashboard/internal/derived"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state/data"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// renderSnapshot prints a plain-text view of the store. This is the thin
// presentation boundary: it only reads snapshots, it never mutates.
func renderSnapshot(w io.Writer, st data.State) {
	fmt.Fprintln(w, strings.Repeat("=", 72))

	cur := strings.ToUpper(st.ActiveCurrency)
	fmt.Fprintf(w, "Market Overview (%s)\n", cur)
	fmt.Fprintf(w, "  Total Market Cap: %.0f\n", st.Aggregates.TotalMarketCap[st.ActiveCurrency])
	fmt.Fprintf(w, "  24h Volume:       %.0f\n", st.Aggregates.TotalVolume[st.ActiveCurrency])
	if btc, ok := st.Aggregates.MarketCapPercentage["btc"]; ok {
		fmt.Fprintf(w, "  BTC Dominance:    %.1f%%\n", btc)
	}

	rows := st.Assets
	if st.SearchQuery != "" {
		rows = derived.FilterAssets(rows, st.SearchQuery)
		fmt.Fprintf(w, "\nFilter: %q\n", st.SearchQuery)
	}
	limit := 10
	if len(rows) < limit {
		limit = len(rows)
	}
	if limit > 0 {
		fmt.Fprintf(w, "\n%-4s %-22s %-8s %14s %9s\n", "#", "Name", "Symbol", "Price", "24h %")
		for _, a := range rows[:limit] {
			fmt.Fprintf(w, "%-4d %-22s %-8s %14.4f %8.2f%%\n",
				a.MarketCapRank, a.Name, strings.ToUpper(a.Symbol), a.CurrentPrice, a.PriceChangePercent24h)
		}
	} else if st.CatalogStatus.Phase == models.FetchPending {
		fmt.Fprintln(w, "\n  Loading catalog...")
	}

	if st.FocusedAsset != "" {
		fmt.Fprintf(w, "\nFocused: %s\n", st.FocusedAsset)
		switch {
		case st.FocusedDetail != nil && st.FocusedDetail.ID == st.FocusedAsset:
			d := st.FocusedDetail
			fmt.Fprintf(w, "  %s (%s)  price %.4f %s  rank #%d\n",
				d.Name, strings.ToUpper(d.Symbol), d.CurrentPrice[st.ActiveCurrency], cur, d.MarketCapRank)
		case st.DetailStatus.Phase == models.FetchFailed:
			fmt.Fprintf(w, "  detail unavailable: %s\n", st.DetailStatus.Reason)
		default:
			fmt.Fprintln(w, "  loading detail...")
		}
	}

	if len(st.Comparison) > 0 {
		fmt.Fprintf(w, "\nComparison (%dd, %s)\n", st.ChartRangeDays, cur)
		for _, line := range derived.AssembleComparison(st) {
			switch {
			case line.Pending:
				fmt.Fprintf(w, "  %-22s loading...\n", line.Name)
			case line.Reason != "":
				fmt.Fprintf(w, "  %-22s %s\n", line.Name, line.Reason)
			default:
				fmt.Fprintf(w, "  %-22s %d points\n", line.Name, len(line.Points))
			}
		}
	}

	if st.Exchange.Result != "" || st.Exchange.Reason != "" {
		fmt.Fprintf(w, "\nExchange: %s %s -> %s", st.Exchange.Amount, st.Exchange.From, st.Exchange.To)
		if st.Exchange.Result != "" {
			fmt.Fprintf(w, " = %s\n", st.Exchange.Result)
		} else {
			fmt.Fprintf(w, " (%s)\n", st.Exchange.Reason)
		}
	}
}
