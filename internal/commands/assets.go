package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carry9637/cryptocurrency-dashboard/internal/derived"
	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/internal/market"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

var (
	assetsCurrency string
	assetsSearch   string
)

// assetsCmd represents the assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Print the ranked asset catalog",
	Long: `Fetch and print the ranked asset catalog in one shot.

Examples:
  crypto-dashboard assets
  crypto-dashboard assets --currency eur
  crypto-dashboard assets --search bit`,
	RunE: runAssets,
}

func init() {
	rootCmd.AddCommand(assetsCmd)

	assetsCmd.Flags().StringVarP(&assetsCurrency, "currency", "c", models.DefaultCurrency, "Quote currency")
	assetsCmd.Flags().StringVarP(&assetsSearch, "search", "s", "", "Filter by name or symbol")
}

func runAssets(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	svc := market.NewService(gateway.NewClient(&cfg.API, log), log)
	catalog := svc.FetchCatalog(cmd.Context(), assetsCurrency)

	assets := catalog.Assets
	if assetsSearch != "" {
		assets = derived.FilterAssets(assets, assetsSearch)
	}
	if len(assets) == 0 {
		fmt.Println("No assets available.")
		return nil
	}

	fmt.Printf("%-4s %-22s %-8s %14s %9s %16s\n", "#", "Name", "Symbol", "Price", "24h %", "Market Cap")
	for _, a := range assets {
		fmt.Printf("%-4d %-22s %-8s %14.4f %8.2f%% %16.0f\n",
			a.MarketCapRank, a.Name, strings.ToUpper(a.Symbol), a.CurrentPrice, a.PriceChangePercent24h, a.MarketCap)
	}
	return nil
}
