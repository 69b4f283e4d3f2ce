package session

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/marwick/garmin-insights-go/internal/garmin"
)

func TestGetMemoizesClient(t *testing.T) {
	transport := garmin.NewInMemoryTransport(false)
	manager := NewManager(
		Credentials{Email: "user@example.com", Password: "secret"},
		transport,
		t.TempDir(),
		false,
	)

	first, err := manager.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	second, err := manager.Get()
	if err != nil {
		t.Fatalf("Second Get failed: %v", err)
	}

	if first != second {
		t.Error("Expected the same client from both calls")
	}
	if transport.AuthCalls != 1 {
		t.Errorf("Expected 1 handshake, got %d", transport.AuthCalls)
	}
}

func TestGetMissingCredentials(t *testing.T) {
	cases := []struct {
		name  string
		creds Credentials
	}{
		{"no email", Credentials{Password: "secret"}},
		{"no password", Credentials{Email: "user@example.com"}},
		{"neither", Credentials{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := garmin.NewInMemoryTransport(false)
			manager := NewManager(tc.creds, transport, t.TempDir(), false)

			_, err := manager.Get()
			var confErr *ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("Expected ConfigurationError, got %v", err)
			}
			if transport.AuthCalls != 0 {
				t.Errorf("Expected no handshake attempt, got %d", transport.AuthCalls)
			}
		})
	}
}

func TestConfigurationErrorRemediation(t *testing.T) {
	err := &ConfigurationError{Missing: []string{"GARMIN_EMAIL"}}
	msg := err.Error()
	for _, want := range []string{"GARMIN_EMAIL", "GARMIN_PASSWORD", "export"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected remediation message to mention %q, got: %s", want, msg)
		}
	}
}

func TestGetHandshakeFailure(t *testing.T) {
	transport := garmin.NewInMemoryTransport(false)
	transport.AuthErr = &garmin.APIError{StatusCode: 401, Message: "bad credentials"}

	manager := NewManager(
		Credentials{Email: "user@example.com", Password: "wrong"},
		transport,
		t.TempDir(),
		false,
	)

	_, err := manager.Get()
	var authErr *AuthenticationError
	if !errors.As(err, &authErr) {
		t.Fatalf("Expected AuthenticationError, got %v", err)
	}

	var apiErr *garmin.APIError
	if !errors.As(err, &apiErr) {
		t.Error("Expected the handshake cause to be unwrappable")
	}

	// A failed handshake is not memoized; the next call re-attempts
	transport.AuthErr = nil
	if _, err := manager.Get(); err != nil {
		t.Fatalf("Expected recovery after handshake failure, got %v", err)
	}
	if transport.AuthCalls != 2 {
		t.Errorf("Expected 2 handshake attempts, got %d", transport.AuthCalls)
	}
}

func TestTokenDump(t *testing.T) {
	dir := t.TempDir()
	transport := garmin.NewInMemoryTransport(false)
	manager := NewManager(
		Credentials{Email: "user@example.com", Password: "secret"},
		transport,
		dir,
		false,
	)

	if _, err := manager.Get(); err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	data, err := os.ReadFile(manager.TokenPath())
	if err != nil {
		t.Fatalf("Expected token dump at %s: %v", manager.TokenPath(), err)
	}

	var token garmin.SessionToken
	if err := json.Unmarshal(data, &token); err != nil {
		t.Fatalf("Token dump is not valid JSON: %v", err)
	}
	if token.OAuthToken == "" {
		t.Error("Expected a non-empty token in the dump")
	}
}
