package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/johnsiilver/boutique"
	"github.com/spf13/cobra"

	"github.com/carry9637/cryptocurrency-dashboard/internal/app"
)

var (
	dashboardFocus   string
	dashboardCompare []string
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Run the live market dashboard",
	Long: `Start the market-data synchronization layer and render a text view of
the store as it changes: market overview, ranked assets, the focused
asset, and the comparison chart state.

Examples:
  crypto-dashboard dashboard
  crypto-dashboard dashboard --focus bitcoin
  crypto-dashboard dashboard --compare bitcoin --compare ethereum`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringVarP(&dashboardFocus, "focus", "f", "", "Asset id to focus on startup")
	dashboardCmd.Flags().StringArrayVarP(&dashboardCompare, "compare", "c", nil, "Asset ids to chart together (repeatable, max 5)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	application := app.New(cfg, log)
	if err := application.Initialize(); err != nil {
		log.WithError(err).Error("Failed to initialize application")
		return err
	}
	if err := application.Start(); err != nil {
		log.WithError(err).Error("Failed to start application")
		return err
	}

	store := application.Store()
	for _, id := range dashboardCompare {
		if err := store.ToggleComparisonMember(id); err != nil {
			log.WithError(err).Warn("Failed to add comparison member")
		}
	}
	if dashboardFocus != "" {
		if err := store.SetFocusedAsset(dashboardFocus); err != nil {
			log.WithError(err).Warn("Failed to focus asset")
		}
	}

	changes, cancel, err := store.Subscribe(boutique.Any)
	if err != nil {
		return err
	}
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	for {
		select {
		case <-changes:
			renderSnapshot(os.Stdout, store.Snapshot())
		case sig := <-interrupt:
			log.WithField("signal", sig.String()).Info("Shutdown signal received")
			return application.Stop()
		}
	}
}
