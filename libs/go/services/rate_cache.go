package services

import (
	"fmt"
	"math/big"
	"sync"
	"time"
)

// DefaultRateCacheTTL is how long a cached rate stays valid unless
// configured otherwise.
const DefaultRateCacheTTL = 60 * time.Second

// CachedRate represents a cached conversion rate with expiration. BridgeID
// records which provider produced the rate so routes built from cache stay
// executable.
type CachedRate struct {
	Rate      float64
	BridgeID  string
	UpdatedAt time.Time
	ExpiresAt time.Time
}

// RateCache is an in-memory TTL cache for conversion rates, keyed by
// (fromToken, toToken, amount). A read never returns an expired entry;
// expired entries found on read are evicted lazily. Concurrent writers for
// the same key are last-write-wins.
type RateCache struct {
	entries map[string]*CachedRate
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
}

// NewRateCache creates a rate cache with the given TTL. A non-positive ttl
// falls back to DefaultRateCacheTTL.
func NewRateCache(ttl time.Duration) *RateCache {
	return NewRateCacheWithClock(ttl, time.Now)
}

// NewRateCacheWithClock creates a rate cache using the supplied clock for
// all expiry decisions. Tests use this to control time.
func NewRateCacheWithClock(ttl time.Duration, now func() time.Time) *RateCache {
	if ttl <= 0 {
		ttl = DefaultRateCacheTTL
	}
	return &RateCache{
		entries: make(map[string]*CachedRate),
		ttl:     ttl,
		now:     now,
	}
}

func cacheKey(fromToken, toToken string, amount *big.Int) string {
	return fmt.Sprintf("%s_%s_%s", fromToken, toToken, amount.String())
}

// Get returns the live cached rate for a conversion, or nil on a miss. An
// entry past its expiry is deleted and reported as a miss.
func (c *RateCache) Get(fromToken, toToken string, amount *big.Int) *CachedRate {
	key := cacheKey(fromToken, toToken, amount)

	c.mu.RLock()
	entry, exists := c.entries[key]
	if exists && c.now().Before(entry.ExpiresAt) {
		c.mu.RUnlock()
		return entry
	}
	c.mu.RUnlock()

	if !exists {
		return nil
	}

	// Entry expired: evict under the write lock, re-checking in case a
	// concurrent Set already replaced it.
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.entries[key]; ok {
		if c.now().Before(current.ExpiresAt) {
			return current
		}
		delete(c.entries, key)
	}
	return nil
}

// Set stores the rate for a conversion, overwriting any existing entry. The
// entry expires one TTL after the current clock reading.
func (c *RateCache) Set(fromToken, toToken string, amount *big.Int, rate float64, bridgeID string) {
	key := cacheKey(fromToken, toToken, amount)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = &CachedRate{
		Rate:      rate,
		BridgeID:  bridgeID,
		UpdatedAt: now,
		ExpiresAt: now.Add(c.ttl),
	}
}

// Sweep removes every entry whose expiry is at or before now and returns the
// number of entries removed.
func (c *RateCache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if !now.Before(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of entries currently held, including expired
// entries that have not been swept or lazily evicted yet.
func (c *RateCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the configured entry lifetime.
func (c *RateCache) TTL() time.Duration {
	return c.ttl
}

// Clear removes all cached rates
func (c *RateCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*CachedRate)
}

// Stats returns statistics about the cache
func (c *RateCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var expired int
	now := c.now()
	for _, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			expired++
		}
	}

	return map[string]interface{}{
		"total_entries":     len(c.entries),
		"expired_entries":   expired,
		"active_entries":    len(c.entries) - expired,
		"cache_ttl_seconds": c.ttl.Seconds(),
	}
}
