package garmin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marwick/garmin-insights-go/internal/core"
)

// APIError is returned when the remote service returns an error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// HTTPTransport is the net/http implementation of Transport.
// Each call is a single attempt; failures propagate to the caller untouched.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	token      *SessionToken
	verbose    bool
}

// NewHTTPTransport creates a transport against the given base URL.
// An empty baseURL selects the production endpoint.
func NewHTTPTransport(baseURL string, verbose bool) *HTTPTransport {
	if baseURL == "" {
		baseURL = core.APIBaseURL
	}
	return &HTTPTransport{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		verbose: verbose,
	}
}

// log writes a message to stderr if verbose mode is enabled.
func (t *HTTPTransport) log(msg string) {
	core.Eprint(fmt.Sprintf("[API] %s", msg), t.verbose)
}

// Authenticate performs the login handshake and stores the resulting token
// for subsequent requests.
func (t *HTTPTransport) Authenticate(email, password string) (*SessionToken, error) {
	urlStr := fmt.Sprintf("%s/%s", t.baseURL, EndpointLogin)
	t.log(fmt.Sprintf("POST %s", urlStr))

	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var token SessionToken
	if err := json.Unmarshal(respBody, &token); err != nil {
		return nil, fmt.Errorf("failed to parse login response: %w", err)
	}

	t.token = &token
	t.log(fmt.Sprintf("Login OK: HTTP %d", resp.StatusCode))
	return &token, nil
}

// Request performs a GET request and decodes the JSON payload.
func (t *HTTPTransport) Request(endpoint string, params map[string]string) (Document, error) {
	urlStr := fmt.Sprintf("%s/%s", t.baseURL, endpoint)

	if len(params) > 0 {
		q := url.Values{}
		for k, v := range params {
			q.Set(k, v)
		}
		urlStr = fmt.Sprintf("%s?%s", urlStr, q.Encode())
	}

	t.log(fmt.Sprintf("GET %s", urlStr))

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if t.token != nil {
		req.Header.Set("Authorization", "Bearer "+t.token.OAuthToken)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var result Document
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	t.log(fmt.Sprintf("Response: HTTP %d, %d bytes", resp.StatusCode, len(body)))
	return result, nil
}

// IsVerbose returns whether verbose logging is enabled.
func (t *HTTPTransport) IsVerbose() bool {
	return t.verbose
}
