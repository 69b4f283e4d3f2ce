package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marwick/garmin-insights-go/internal/config"
	"github.com/marwick/garmin-insights-go/internal/logger"
	"github.com/marwick/garmin-insights-go/internal/server"
	"github.com/marwick/garmin-insights-go/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the insights HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if verbose {
			cfg.Garmin.Verbose = true
		}
		if timezone != "" {
			cfg.Garmin.Timezone = timezone
		}

		ctx, stop := signal.NotifyContext(
			context.Background(),
			os.Interrupt,
			syscall.SIGTERM,
		)
		defer stop()

		sessions := newSessionManager(cfg)
		app := server.New(cfg, sessions)

		errCh := make(chan error, 1)
		go func() {
			errCh <- app.Run()
		}()

		logger.Info("garmin-insights started", map[string]any{
			"addr": app.Addr(),
		})

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received", nil)

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			10*time.Second,
		)
		defer cancel()

		if err := app.Shutdown(shutdownCtx); err != nil {
			return err
		}

		logger.Info("garmin-insights stopped cleanly", nil)
		return nil
	},
}

// newSessionManager builds the process-wide session manager from config.
func newSessionManager(cfg *config.Config) *session.Manager {
	creds := session.Credentials{
		Email:    cfg.Garmin.Email,
		Password: cfg.Garmin.Password,
	}
	transport := newTransport(cfg)
	return session.NewManager(creds, transport, cfg.Garmin.TokenDir, cfg.Garmin.Verbose)
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
