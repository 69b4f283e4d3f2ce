// Package cache provides the cached data-access layer in front of the
// Garmin Connect API.
//
// # Overview
//
// Insight calculations need at most two documents per calendar date: the
// daily activity summary ("stats") and the sleep document ("sleep"). The
// Manager memoizes both, keyed by (kind, date), so several calculations in
// one request window share a single remote fetch per document.
//
// # Cache Keying
//
// Entries are keyed by the composite (kind, date) pair rather than by date
// alone. The two kinds are fully independent: fetching stats for a date
// never satisfies a sleep request for that date, and vice versa. For a given
// key at most one entry exists; a fresh fetch replaces it.
//
// # Lifecycle
//
//   - Created empty with the Manager.
//   - An entry is added on each cache miss after a successful fetch.
//   - A failed fetch stores nothing; the error propagates unchanged.
//   - ClearCache removes every entry; UpdateDate does the same as a side
//     effect of changing the instance date.
//
// There is no TTL, no eviction policy, and no cross-process sharing. The
// cache lives exactly as long as its Manager.
package cache

import (
	"sync"

	"github.com/marwick/garmin-insights-go/internal/garmin"
)

// Key identifies one cacheable result: a data kind and a calendar date.
type Key struct {
	Kind string // core.KindStats or core.KindSleep
	Date string // YYYY-MM-DD
}

// Store is the interface for cache entry storage.
// The default implementation is the in-memory MemoryStore.
type Store interface {
	// Get returns the cached document for key, and whether one exists.
	Get(key Key) (garmin.Document, bool)

	// Put stores a document for key, replacing any existing entry.
	Put(key Key, doc garmin.Document)

	// Clear removes all entries.
	Clear()

	// Len returns the number of entries currently held.
	Len() int
}

// MemoryStore is the in-process Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Key]garmin.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[Key]garmin.Document),
	}
}

// Get returns the cached document for key, and whether one exists.
func (s *MemoryStore) Get(key Key) (garmin.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.entries[key]
	return doc, ok
}

// Put stores a document for key, replacing any existing entry.
func (s *MemoryStore) Put(key Key, doc garmin.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = doc
}

// Clear removes all entries.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]garmin.Document)
}

// Len returns the number of entries currently held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
