package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marwick/garmin-insights-go/internal/cache"
	"github.com/marwick/garmin-insights-go/internal/config"
	"github.com/marwick/garmin-insights-go/internal/core"
	"github.com/marwick/garmin-insights-go/internal/garmin"
	"github.com/marwick/garmin-insights-go/internal/output"
)

var fetchDate string

// newTransport builds the HTTP transport from config.
func newTransport(cfg *config.Config) garmin.Transport {
	baseURL := cfg.Garmin.BaseURL
	if baseURL == core.APIBaseURL {
		baseURL = ""
	}
	return garmin.NewHTTPTransport(baseURL, cfg.Garmin.Verbose)
}

// newFacade builds a one-shot data-access facade for a CLI invocation.
func newFacade() (*cache.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Garmin.Verbose = true
	}
	if timezone != "" {
		cfg.Garmin.Timezone = timezone
	}

	sessions := newSessionManager(cfg)
	loc := core.GetTZ(cfg.Garmin.Timezone)
	return cache.NewManager(sessions, nil, fetchDate, loc, cfg.Garmin.Verbose), nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Fetch the raw daily activity summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := newFacade()
		if err != nil {
			return err
		}
		doc, err := facade.GetStats("")
		if err != nil {
			return err
		}
		output.PrintJSON(doc)
		return nil
	},
}

var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Fetch the raw sleep document",
	RunE: func(cmd *cobra.Command, args []string) error {
		facade, err := newFacade()
		if err != nil {
			return err
		}
		doc, err := facade.GetSleep("")
		if err != nil {
			return err
		}
		output.PrintJSON(doc)
		return nil
	},
}

var cachePathCmd = &cobra.Command{
	Use:   "cache-path",
	Short: "Print the session-token dump location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(core.TokenDir())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{statsCmd, sleepCmd} {
		cmd.Flags().StringVar(&fetchDate, "date", "", "Date to fetch (YYYY-MM-DD, default today)")
	}
	rootCmd.AddCommand(statsCmd, sleepCmd, cachePathCmd)
}
