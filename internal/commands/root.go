package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crypto-dashboard",
	Short: "Live cryptocurrency market dashboard",
	Long: `A client-side cryptocurrency market dashboard built in Go.

It keeps a local, reactive snapshot of live market data in sync with a
remote pricing service:
• Resilient gateway client with bounded retry under rate limiting
• Partial-failure tolerant catalog aggregation
• Chart series cache with in-flight request suppression
• Exchange calculator with full-precision decimal arithmetic
• Bounded multi-asset comparison sets`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
