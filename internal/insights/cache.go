package insights

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// DefaultTTL is how long a cached insights report stays fresh.
const DefaultTTL = 24 * time.Hour

// cacheEntry pairs cached insights with their creation time.
type cacheEntry struct {
	insights  *TechnologyInsights
	timestamp time.Time
	originKey string
}

// CacheStats is a point-in-time snapshot of cache effectiveness.
type CacheStats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
}

// Cache is a TTL cache over normalized technology sets. It is safe for
// concurrent use; expiry happens lazily on Get and on periodic sweeps.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	stats   CacheStats
	now     func() time.Time // test hook
}

// NewCache creates a cache with the given TTL; ttl <= 0 uses DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key derives the cache key for a technology set. Keys are pure and
// order-independent: names are trimmed, lowercased and sorted.
func Key(technologies []string) string {
	names := make([]string, 0, len(technologies))
	for _, t := range technologies {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			names = append(names, t)
		}
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// Get returns the cached insights for a technology set, expiring the
// entry first if it has outlived the TTL.
func (c *Cache) Get(technologies []string) (*TechnologyInsights, bool) {
	key := Key(technologies)

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}
	if c.now().Sub(entry.timestamp) > c.ttl {
		delete(c.entries, key)
		c.stats.Evictions++
		c.stats.Misses++
		return nil, false
	}
	c.stats.Hits++
	return entry.insights, true
}

// Set stores insights for a technology set.
func (c *Cache) Set(technologies []string, ins *TechnologyInsights, originKey string) {
	key := Key(technologies)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{
		insights:  ins,
		timestamp: c.now(),
		originKey: originKey,
	}
}

// Has reports whether a fresh entry exists without touching hit/miss stats.
func (c *Cache) Has(technologies []string) bool {
	key := Key(technologies)

	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	return ok && c.now().Sub(entry.timestamp) <= c.ttl
}

// ClearExpired removes all entries past the TTL and returns the count.
func (c *Cache) ClearExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	cutoff := c.now()
	for key, entry := range c.entries {
		if cutoff.Sub(entry.timestamp) > c.ttl {
			delete(c.entries, key)
			c.stats.Evictions++
			removed++
		}
	}
	return removed
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.stats
	s.Size = len(c.entries)
	return s
}

// StartSweeper runs ClearExpired on an interval until ctx is done.
func (c *Cache) StartSweeper(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := c.ClearExpired(); n > 0 && logger != nil {
					logger.Info("insights cache sweep", "evicted", n)
				}
			}
		}
	}()
}

// warmCombinations are common technology stacks pre-generated by Warm so
// first requests for popular sites hit the cache.
var warmCombinations = [][]string{
	{"React", "Node.js", "PostgreSQL"},
	{"Next.js", "Vercel", "Supabase"},
	{"Vue.js", "Express", "MongoDB"},
	{"WordPress", "MySQL"},
	{"Webflow"},
}

// Warm pre-populates the cache using generate. Combinations already
// cached are skipped; individual failures are logged and do not abort
// the batch.
func (c *Cache) Warm(ctx context.Context, logger *slog.Logger, generate func(ctx context.Context, technologies []string) (*TechnologyInsights, error)) {
	for _, combo := range warmCombinations {
		if ctx.Err() != nil {
			return
		}
		if c.Has(combo) {
			continue
		}
		ins, err := generate(ctx, combo)
		if err != nil {
			if logger != nil {
				logger.Warn("cache warm-up generation failed", "technologies", strings.Join(combo, ","), "error", err)
			}
			continue
		}
		c.Set(combo, ins, "warmup")
	}
}
