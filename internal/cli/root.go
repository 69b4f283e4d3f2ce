// Package cli implements the command-line interface for the Garmin Insights service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marwick/garmin-insights-go/internal/core"
)

// Global flags
var (
	verbose  bool
	timezone string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "garmin-insights",
	Short:   "Garmin Insights – derived health metrics over the Garmin Connect API",
	Long:    `A service and command-line utility exposing activity and sleep insights computed from Garmin Connect data.`,
	Version: core.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags available to all commands
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "", fmt.Sprintf("Timezone for date defaulting (default: %s)", core.DefaultTZ))
}
