package core

import (
	"sync"
	"time"
)

const (
	defaultCacheCapacity = 256
	defaultCacheTTL      = 5 * time.Minute
)

type cacheEntry struct {
	statement *PayoffStatement
	storedAt  time.Time
}

// statementCache is a thread-safe payoff result cache with TTL expiry and a
// hard entry cap. The store is read-only for us, so staleness only delays
// seeing payments received in the TTL window; the cap keeps a long-running
// process from retaining every key it ever saw.
type statementCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	entries  map[SaleKey]cacheEntry
}

func newStatementCache(capacity int, ttl time.Duration) *statementCache {
	return &statementCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[SaleKey]cacheEntry),
	}
}

func (c *statementCache) get(key SaleKey) (*PayoffStatement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.statement, true
}

func (c *statementCache) put(key SaleKey, st *PayoffStatement) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{statement: st, storedAt: time.Now()}
}

// evictOldestLocked drops the stalest entry. Caller holds the mutex.
func (c *statementCache) evictOldestLocked() {
	var oldestKey SaleKey
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

func (c *statementCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
