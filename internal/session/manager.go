// Package session owns the authenticated connection to the remote service.
//
// The manager establishes exactly one session per process: the first Get
// performs the login handshake, dumps the resulting token to disk, and
// memoizes the client; every later Get returns the same client without
// another handshake. A failed handshake leaves nothing memoized, so the
// next Get attempts the handshake again.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/marwick/garmin-insights-go/internal/core"
	"github.com/marwick/garmin-insights-go/internal/garmin"
	"github.com/marwick/garmin-insights-go/internal/metrics"
)

// ConfigurationError indicates required credentials are missing from the
// environment. The message carries remediation text.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"Garmin credentials not found. Please set environment variables:\n"+
			"  export %s='your_email@example.com'\n"+
			"  export %s='your_password'\n"+
			"Or provide them in the service environment.",
		core.EmailEnvVar, core.PasswordEnvVar,
	)
}

// AuthenticationError indicates the login handshake with the remote service
// failed. Not retried; the cause is available via Unwrap.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("Garmin authentication failed: %v", e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Credentials holds the account identifier and secret for the handshake.
type Credentials struct {
	Email    string
	Password string
}

// Manager lazily establishes and memoizes the authenticated client.
// Safe for use from concurrent requests; the handshake runs at most once
// per process unless it fails.
type Manager struct {
	creds     Credentials
	transport garmin.Transport
	tokenDir  string
	verbose   bool

	mu     sync.Mutex
	client *garmin.Client
}

// NewManager creates a session manager. If transport is nil, an HTTP
// transport against the production endpoint is used. tokenDir is where the
// session token is dumped after login; empty selects the default.
func NewManager(creds Credentials, transport garmin.Transport, tokenDir string, verbose bool) *Manager {
	if transport == nil {
		transport = garmin.NewHTTPTransport("", verbose)
	}
	if tokenDir == "" {
		tokenDir = core.TokenDir()
	}
	return &Manager{
		creds:     creds,
		transport: transport,
		tokenDir:  tokenDir,
		verbose:   verbose,
	}
}

// log writes a debug message if verbose mode is enabled.
func (m *Manager) log(msg string) {
	core.Eprint(fmt.Sprintf("[Session] %s", msg), m.verbose)
}

// Get returns the authenticated client, performing the login handshake on
// first use.
//
// Returns *ConfigurationError when credentials are absent and
// *AuthenticationError when the handshake fails. Neither is retried here;
// both propagate to the caller.
func (m *Manager) Get() (*garmin.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}

	var missing []string
	if m.creds.Email == "" {
		missing = append(missing, core.EmailEnvVar)
	}
	if m.creds.Password == "" {
		missing = append(missing, core.PasswordEnvVar)
	}
	if len(missing) > 0 {
		return nil, &ConfigurationError{Missing: missing}
	}

	m.log("Authenticating with remote service...")
	token, err := m.transport.Authenticate(m.creds.Email, m.creds.Password)
	if err != nil {
		return nil, &AuthenticationError{Err: err}
	}
	metrics.Handshakes.Inc()

	// Save session for future use. Write-only: a failure here never fails
	// the login, and the token is not read back by this process.
	if err := m.dumpToken(token); err != nil {
		m.log(fmt.Sprintf("Failed to persist session token: %v", err))
	}

	m.client = garmin.NewClient(m.transport)
	return m.client, nil
}

// TokenPath returns the location of the persisted session token.
func (m *Manager) TokenPath() string {
	return filepath.Join(m.tokenDir, "session.json")
}

// dumpToken persists the session token under the token directory.
func (m *Manager) dumpToken(token *garmin.SessionToken) error {
	if err := os.MkdirAll(m.tokenDir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return err
	}

	path := m.TokenPath()
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	m.log(fmt.Sprintf("Session token saved to %s", path))
	return nil
}
