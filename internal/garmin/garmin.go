package garmin

// Client is the typed convenience layer over the remote service.
// Construct one via session.Manager, which owns the authentication handshake.
type Client struct {
	transport Transport
}

// NewClient wraps an already-authenticated transport.
func NewClient(transport Transport) *Client {
	return &Client{transport: transport}
}

// GetStats fetches the daily activity summary for a YYYY-MM-DD date.
func (c *Client) GetStats(date string) (Document, error) {
	return c.transport.Request(EndpointStats, map[string]string{"date": date})
}

// GetSleepData fetches the sleep document for a YYYY-MM-DD date.
func (c *Client) GetSleepData(date string) (Document, error) {
	return c.transport.Request(EndpointSleep, map[string]string{"date": date})
}

// Transport returns the underlying transport.
func (c *Client) Transport() Transport {
	return c.transport
}

// Keys returns the top-level keys of a document in unspecified order.
// Used by the health surface to report the shape of the last fetch.
func Keys(doc Document) []string {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	return keys
}
