package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carry9637/cryptocurrency-dashboard/internal/gateway"
	"github.com/carry9637/cryptocurrency-dashboard/internal/market"
	"github.com/carry9637/cryptocurrency-dashboard/internal/state"
	"github.com/carry9637/cryptocurrency-dashboard/pkg/models"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <amount> <from> <to>",
	Short: "Convert between assets and fiat currencies",
	Long: `Fetch current spot rates and convert an amount between two sides, each
either an asset id or a fiat currency code.

Examples:
  crypto-dashboard convert 100 bitcoin usd
  crypto-dashboard convert 2.5 ethereum bitcoin
  crypto-dashboard convert 1000 usd bitcoin`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	amount, from, to := args[0], args[1], args[2]

	cfg, log, err := setup()
	if err != nil {
		return err
	}

	store, err := state.New(models.DefaultCurrency)
	if err != nil {
		return err
	}

	ids := make([]string, 0, 2)
	for _, side := range []string{from, to} {
		if !models.IsFiat(side) {
			ids = append(ids, side)
		}
	}
	if len(ids) == 0 {
		// Fiat-to-fiat cross rates resolve through an asset quoted in both.
		ids = append(ids, state.DefaultExchangeFrom)
	}

	svc := market.NewService(gateway.NewClient(&cfg.API, log), log)
	rates := svc.FetchSpotPrices(cmd.Context(), ids, models.SupportedCurrencyCodes())

	if err := store.SetSpotRates(rates); err != nil {
		return err
	}
	if err := store.SetExchangeInputs(from, to, amount); err != nil {
		return err
	}

	ex := store.Snapshot().Exchange
	if ex.Result == "" {
		if ex.Reason != "" {
			return fmt.Errorf("%s", ex.Reason)
		}
		return fmt.Errorf("nothing to convert: amount %q", amount)
	}

	fmt.Printf("%s %s = %s %s\n", ex.Amount, from, ex.Result, to)
	return nil
}
