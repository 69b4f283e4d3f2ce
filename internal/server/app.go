// Package server exposes the insight endpoints over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/marwick/garmin-insights-go/internal/config"
	"github.com/marwick/garmin-insights-go/internal/session"
)

// App wraps the HTTP server for startup and graceful shutdown.
type App struct {
	httpServer *http.Server
}

// New builds the application around a shared session manager.
func New(cfg *config.Config, sessions *session.Manager) *App {
	router := NewRouter(cfg, sessions)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	return &App{httpServer: server}
}

// Run starts serving. Blocks until the server stops.
func (a *App) Run() error {
	return a.httpServer.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (a *App) Addr() string {
	return a.httpServer.Addr
}
