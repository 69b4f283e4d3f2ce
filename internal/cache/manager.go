package cache

import (
	"fmt"
	"time"

	"github.com/marwick/garmin-insights-go/internal/core"
	"github.com/marwick/garmin-insights-go/internal/garmin"
	"github.com/marwick/garmin-insights-go/internal/metrics"
	"github.com/marwick/garmin-insights-go/internal/session"
)

// Manager is the data-access facade consumed by insight calculations.
//
// It composes the session manager and a Store: a request for a (kind, date)
// pair is served from cache when present, otherwise the session is obtained,
// the kind-specific remote fetch performed, and the result cached and
// returned. All management operations (ClearCache, UpdateDate, RefreshData,
// Info) act on this instance's store only.
//
// The HTTP layer constructs one Manager per request, so entries never
// outlive a request; the CLI constructs one per invocation. The session
// manager behind it is shared and performs its handshake once per process.
type Manager struct {
	session *session.Manager
	store   Store
	date    string // instance date, YYYY-MM-DD
	verbose bool
}

// NewManager creates a facade over the given session manager.
// If store is nil, a fresh MemoryStore is used. If date is empty, the
// instance date defaults to today in the given timezone.
func NewManager(sess *session.Manager, store Store, date string, loc *time.Location, verbose bool) *Manager {
	if store == nil {
		store = NewMemoryStore()
	}
	if date == "" {
		date = core.Today(loc)
	}
	return &Manager{
		session: sess,
		store:   store,
		date:    date,
		verbose: verbose,
	}
}

// log writes a debug message if verbose mode is enabled.
func (m *Manager) log(msg string) {
	core.Eprint(fmt.Sprintf("[Cache] %s", msg), m.verbose)
}

// Info reports cache occupancy for the instance date and the date itself.
type Info struct {
	Date        string `json:"date"`
	StatsCached bool   `json:"stats_cached"`
	SleepCached bool   `json:"sleep_cached"`
}

// GetStats returns the daily activity summary for date, fetching it from
// the remote service on a cache miss. An empty date selects the instance
// date.
func (m *Manager) GetStats(date string) (garmin.Document, error) {
	return m.get(core.KindStats, date)
}

// GetSleep returns the sleep document for date, fetching it from the remote
// service on a cache miss. An empty date selects the instance date.
func (m *Manager) GetSleep(date string) (garmin.Document, error) {
	return m.get(core.KindSleep, date)
}

// get implements the shared miss path for both kinds.
//
// A failed fetch stores nothing, so a later call for the same key performs
// a fresh fetch rather than replaying the failure. Empty documents are
// cached like any other result; "no data" handling belongs to the callers.
func (m *Manager) get(kind, date string) (garmin.Document, error) {
	if date == "" {
		date = m.date
	}
	key := Key{Kind: kind, Date: date}

	if doc, ok := m.store.Get(key); ok {
		m.log(fmt.Sprintf("Hit for %s %s", kind, date))
		metrics.CacheHits.WithLabelValues(kind).Inc()
		return doc, nil
	}
	metrics.CacheMisses.WithLabelValues(kind).Inc()

	client, err := m.session.Get()
	if err != nil {
		return nil, err
	}

	m.log(fmt.Sprintf("Fetching %s for %s", kind, date))
	start := time.Now()

	var doc garmin.Document
	switch kind {
	case core.KindStats:
		doc, err = client.GetStats(date)
	case core.KindSleep:
		doc, err = client.GetSleepData(date)
	default:
		return nil, fmt.Errorf("unknown data kind: %s", kind)
	}

	metrics.FetchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.FetchErrors.WithLabelValues(kind).Inc()
		m.log(fmt.Sprintf("Fetch failed for %s %s: %v", kind, date, err))
		return nil, err
	}

	m.store.Put(key, doc)
	return doc, nil
}

// ClearCache removes all cached entries for this instance. Idempotent.
func (m *Manager) ClearCache() {
	m.store.Clear()
	m.log("Cache cleared")
}

// UpdateDate sets the instance date and unconditionally clears the cache.
func (m *Manager) UpdateDate(date string) {
	m.date = date
	m.ClearCache()
}

// Date returns the instance date.
func (m *Manager) Date() string {
	return m.date
}

// RefreshData clears the cache and eagerly re-fetches both kinds for the
// given date (instance date when empty), forcing two remote calls. Returns
// the first fetch error encountered.
func (m *Manager) RefreshData(date string) error {
	m.ClearCache()
	if _, err := m.GetStats(date); err != nil {
		return err
	}
	if _, err := m.GetSleep(date); err != nil {
		return err
	}
	return nil
}

// Info reports whether stats and sleep entries are cached for the instance
// date. Read-only; no effect on the cache.
func (m *Manager) Info() Info {
	_, statsCached := m.store.Get(Key{Kind: core.KindStats, Date: m.date})
	_, sleepCached := m.store.Get(Key{Kind: core.KindSleep, Date: m.date})
	return Info{
		Date:        m.date,
		StatsCached: statsCached,
		SleepCached: sleepCached,
	}
}
