package meaning

import (
	"container/list"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/mesh-intelligence/horasat/pkg/types"
)

// ResultCache memoizes pipeline output keyed by a BaseSet hash. Bounded
// size with LRU eviction and an optional per-entry TTL. It is the only
// mutable shared structure in the engine; all mutation goes through one
// mutex.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration // zero means entries never expire
	entries  map[string]*list.Element
	order    *list.List // front is most recently used

	now func() time.Time // injectable clock for tests
}

type cacheEntry struct {
	key      string
	result   types.ExtractionResult
	storedAt time.Time
}

// NewResultCache creates a cache holding at most capacity entries.
// Non-positive capacity falls back to the default. A zero ttl disables
// expiry.
func NewResultCache(capacity int, ttl time.Duration) *ResultCache {
	if capacity <= 0 {
		capacity = types.DefaultCacheSize
	}
	return &ResultCache{
		capacity: capacity,
		ttl:      ttl,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
		now:      time.Now,
	}
}

// GetOrCompute returns the cached result for the BaseSet, computing and
// storing it on a miss. Repeated calls with the same BaseSet return the
// cached contents without re-invoking compute. A malformed BaseSet gets
// a timestamp-derived key, which defeats caching for that request but
// never fails it. Compute errors are returned and nothing is stored.
func (c *ResultCache) GetOrCompute(bases types.BaseSet, info types.BirthInfo, compute func() (types.ExtractionResult, error)) (types.ExtractionResult, error) {
	key, cacheable := c.key(bases, info)

	if cacheable {
		c.mu.Lock()
		if el, ok := c.entries[key]; ok {
			entry := el.Value.(*cacheEntry)
			if c.ttl == 0 || c.now().Sub(entry.storedAt) < c.ttl {
				c.order.MoveToFront(el)
				result := entry.result
				c.mu.Unlock()
				return result, nil
			}
			// Expired: drop and fall through to recompute.
			c.order.Remove(el)
			delete(c.entries, key)
		}
		c.mu.Unlock()
	}

	result, err := compute()
	if err != nil {
		return types.ExtractionResult{}, err
	}

	if cacheable {
		c.store(key, result)
	}
	return result, nil
}

// Len returns the number of live entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// store inserts a computed result, evicting the least recently used
// entry when the cache is full.
func (c *ResultCache) store(key string, result types.ExtractionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		// Lost a race with another computation of the same key; keep
		// the existing entry fresh.
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}

	el := c.order.PushFront(&cacheEntry{key: key, result: result, storedAt: c.now()})
	c.entries[key] = el
}

// key derives a deterministic cache key from the four sequences and the
// birth metadata. A BaseSet that fails validation falls back to a
// timestamp-derived key and reports the entry as uncacheable.
func (c *ResultCache) key(bases types.BaseSet, info types.BirthInfo) (string, bool) {
	if err := bases.Validate(); err != nil {
		return fmt.Sprintf("uncacheable-%d", c.now().UnixNano()), false
	}

	h := sha256.New()
	var buf [8]byte
	for _, seq := range [][types.PositionCount]int{bases.Base1, bases.Base2, bases.Base3, bases.Base4} {
		for _, v := range seq {
			binary.BigEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		}
	}
	h.Write([]byte(info.Date))
	h.Write([]byte{0})
	h.Write([]byte(info.WeekdayLabel))
	return hex.EncodeToString(h.Sum(nil)), true
}
