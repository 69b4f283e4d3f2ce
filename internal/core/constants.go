// Package core provides shared constants and date helpers for the Garmin Insights service.
package core

import (
	"os"
	"path/filepath"
)

// Remote service configuration
const (
	APIBaseURL     = "https://connectapi.garmin.com"
	EmailEnvVar    = "GARMIN_EMAIL"
	PasswordEnvVar = "GARMIN_PASSWORD"
	TokenDirEnvVar = "GARTH_HOME"
	DefaultTZ      = "UTC"
)

// Date formats
const (
	APIDateFmt = "2006-01-02"
)

// Data kinds served by the data-access facade.
const (
	KindStats = "stats"
	KindSleep = "sleep"
)

// TokenDir returns the session-token dump directory.
// Honors GARTH_HOME; defaults to ~/.garth for compatibility with other
// Garmin tooling that shares the persisted session.
func TokenDir() string {
	if dir := os.Getenv(TokenDirEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".garth")
}

// Version is the current service version.
const Version = "0.1.0"
