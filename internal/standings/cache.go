package standings

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CatchCup_Go/internal/domain"
)

// CacheSchemaVersion is bumped when the cached row shape changes
const CacheSchemaVersion = "1.0"

const standingsKey = "standings"

type cachedStandings struct {
	Version  string
	Rows     []domain.TeamStanding
	CachedAt time.Time
}

// standingsCache holds the computed scoreboard with a TTL. Every Clear bumps
// the generation so a read that raced an invalidation is never stored.
type standingsCache struct {
	lru *expirable.LRU[string, *cachedStandings]

	mu         sync.Mutex
	generation uint64
}

func newStandingsCache(size int, ttl time.Duration) *standingsCache {
	return &standingsCache{
		lru: expirable.NewLRU[string, *cachedStandings](size, nil, ttl),
	}
}

// Get returns a copy of the cached rows. Entries from an older schema are dropped.
func (c *standingsCache) Get() ([]domain.TeamStanding, bool) {
	entry, found := c.lru.Get(standingsKey)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(standingsKey)
		return nil, false
	}
	return append([]domain.TeamStanding(nil), entry.Rows...), true
}

// Generation returns the current invalidation count
func (c *standingsCache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// SetIfCurrent stores rows read at generation gen. It reports false and
// stores nothing when the cache was cleared in the meantime.
func (c *standingsCache) SetIfCurrent(gen uint64, rows []domain.TeamStanding) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return false
	}
	c.lru.Add(standingsKey, &cachedStandings{
		Version:  CacheSchemaVersion,
		Rows:     append([]domain.TeamStanding(nil), rows...),
		CachedAt: time.Now(),
	})
	return true
}

func (c *standingsCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}
