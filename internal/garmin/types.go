// Package garmin provides the HTTP client and types for the Garmin Connect API.
package garmin

// Document is an opaque structured payload returned by the remote service.
// The insight layer extracts the fields it needs; everything else passes
// through untouched.
type Document map[string]interface{}

// SessionToken is the authenticated session state returned by the handshake.
// Dumped to disk after login so other tooling can reuse it; never read back
// by this service.
type SessionToken struct {
	OAuthToken  string `json:"oauth_token"`
	TokenSecret string `json:"oauth_token_secret"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
}

// Transport is the interface for talking to the remote service.
// HTTPTransport is the production implementation; InMemoryTransport is the
// test fake.
type Transport interface {
	// Authenticate performs the login handshake and returns the session token.
	Authenticate(email, password string) (*SessionToken, error)

	// Request performs an authenticated GET and decodes the JSON payload.
	Request(endpoint string, params map[string]string) (Document, error)
}

// Remote endpoints consumed by the client.
const (
	EndpointLogin = "auth/login"
	EndpointStats = "usersummary/daily"
	EndpointSleep = "sleep/daily"
)
