package garmin

// InMemoryTransport is a lightweight simulation of the Garmin Connect API.
// Implements the stats and sleep endpoints sufficient for unit testing the
// session and cache layers.
type InMemoryTransport struct {
	stats map[string]Document // date -> daily summary
	sleep map[string]Document // date -> sleep document

	// Error injection. AuthErr fails the next Authenticate; endpoint errors
	// fail every Request to that endpoint until cleared.
	AuthErr      error
	endpointErrs map[string]error

	RequestLog []RequestLogEntry
	AuthCalls  int
	Verbose    bool
}

// RequestLogEntry records a request made to the transport.
type RequestLogEntry struct {
	Endpoint string
	Params   map[string]string
}

// NewInMemoryTransport creates a new in-memory transport for testing.
func NewInMemoryTransport(verbose bool) *InMemoryTransport {
	return &InMemoryTransport{
		stats:        make(map[string]Document),
		sleep:        make(map[string]Document),
		endpointErrs: make(map[string]error),
		RequestLog:   make([]RequestLogEntry, 0),
		Verbose:      verbose,
	}
}

// SeedStats stores a daily summary document for the given date.
func (t *InMemoryTransport) SeedStats(date string, doc Document) {
	t.stats[date] = doc
}

// SeedSleep stores a sleep document for the given date.
func (t *InMemoryTransport) SeedSleep(date string, doc Document) {
	t.sleep[date] = doc
}

// FailEndpoint makes every Request to endpoint return err until cleared with
// a nil err.
func (t *InMemoryTransport) FailEndpoint(endpoint string, err error) {
	if err == nil {
		delete(t.endpointErrs, endpoint)
		return
	}
	t.endpointErrs[endpoint] = err
}

// RequestsMade returns the number of data requests made to this transport.
func (t *InMemoryTransport) RequestsMade() int {
	return len(t.RequestLog)
}

// RequestsFor returns the number of data requests made to the given endpoint.
func (t *InMemoryTransport) RequestsFor(endpoint string) int {
	n := 0
	for _, entry := range t.RequestLog {
		if entry.Endpoint == endpoint {
			n++
		}
	}
	return n
}

// Reset clears all stored documents and recorded requests.
func (t *InMemoryTransport) Reset() {
	t.stats = make(map[string]Document)
	t.sleep = make(map[string]Document)
	t.endpointErrs = make(map[string]error)
	t.RequestLog = make([]RequestLogEntry, 0)
	t.AuthCalls = 0
	t.AuthErr = nil
}

// Authenticate simulates the login handshake.
func (t *InMemoryTransport) Authenticate(email, password string) (*SessionToken, error) {
	t.AuthCalls++
	if t.AuthErr != nil {
		return nil, t.AuthErr
	}
	return &SessionToken{OAuthToken: "test-token", TokenSecret: "test-secret"}, nil
}

// Request simulates a data request against the seeded documents.
// Unknown dates return an empty document, matching the remote service's
// behavior for days with no recorded data.
func (t *InMemoryTransport) Request(endpoint string, params map[string]string) (Document, error) {
	// Track the call for assertions in unit tests
	t.RequestLog = append(t.RequestLog, RequestLogEntry{
		Endpoint: endpoint,
		Params:   copyParams(params),
	})

	if err, ok := t.endpointErrs[endpoint]; ok {
		return nil, err
	}

	date := params["date"]
	switch endpoint {
	case EndpointStats:
		if doc, ok := t.stats[date]; ok {
			return copyDocument(doc), nil
		}
	case EndpointSleep:
		if doc, ok := t.sleep[date]; ok {
			return copyDocument(doc), nil
		}
	}

	return Document{}, nil
}

// copyParams creates a copy of the params map.
func copyParams(params map[string]string) map[string]string {
	result := make(map[string]string)
	for k, v := range params {
		result[k] = v
	}
	return result
}

// copyDocument returns a shallow copy so callers cannot mutate the seed data.
func copyDocument(doc Document) Document {
	result := make(Document, len(doc))
	for k, v := range doc {
		result[k] = v
	}
	return result
}
