// Package cache provides a TTL-keyed result cache with category-based
// invalidation and in-flight request deduplication. It keeps repeated
// directory queries from recomputing suggestions and filter options.
package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/collegedex/collegedex-cli/internal/logger"
)

// Category identifies a class of cached data. Each category has a
// default TTL and may declare dependent categories that are
// invalidated along with it.
type Category string

// Cache categories.
const (
	// CategoryColleges holds college list query results.
	CategoryColleges Category = "colleges"

	// CategoryCourses holds per-college course lookups.
	CategoryCourses Category = "courses"

	// CategoryFilterOptions holds synchronized filter option lists,
	// derived from the college list.
	CategoryFilterOptions Category = "filter_options"

	// CategoryReference holds long-lived reference data such as the
	// state list.
	CategoryReference Category = "reference"
)

// Default TTL per category.
var categoryTTL = map[Category]time.Duration{
	CategoryColleges:      time.Hour,
	CategoryCourses:       time.Hour,
	CategoryFilterOptions: 30 * time.Minute,
	CategoryReference:     24 * time.Hour,
}

// categoryDependents declares invalidation cascades: invalidating a
// category also invalidates every category derived from it.
var categoryDependents = map[Category][]Category{
	CategoryColleges: {CategoryCourses, CategoryFilterOptions},
}

const (
	// DefaultCapacity bounds the number of live entries.
	DefaultCapacity = 512

	// DefaultInflightTimeout is how long an in-flight record may linger
	// before late callers are allowed to issue a fresh fetch. This is
	// cache hygiene for a hung factory, not a cancellation mechanism.
	DefaultInflightTimeout = 30 * time.Second
)

type entry struct {
	data      any
	category  Category
	createdAt time.Time
	ttl       time.Duration
}

type inflight struct {
	done chan struct{}
	data any
	err  error
}

// Cache is a TTL-keyed store mapping derived keys to previously
// computed results. All methods are safe for concurrent use. Failures
// to store are logged and swallowed: callers always get correct data,
// at worst without the caching.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]entry
	pending  map[string]*inflight
	capacity int

	inflightTimeout time.Duration

	// now is the clock, injectable for tests.
	now func() time.Time
}

// New creates a cache with the default capacity.
func New() *Cache {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity creates a cache bounded to the given entry count.
// A non-positive capacity disables storage entirely; lookups miss and
// writes are skipped.
func NewWithCapacity(capacity int) *Cache {
	return &Cache{
		entries:         make(map[string]entry),
		pending:         make(map[string]*inflight),
		capacity:        capacity,
		inflightTimeout: DefaultInflightTimeout,
		now:             time.Now,
	}
}

// Key derives a deterministic cache key from an operation name and
// its parameters. Parameters are sorted so argument order never
// affects cache identity.
func Key(op string, params map[string]string) string {
	if len(params) == 0 {
		return op
	}
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return op + "?" + strings.Join(pairs, "&")
}

// TTL returns the default TTL for a category.
func TTL(category Category) time.Duration {
	if ttl, ok := categoryTTL[category]; ok {
		return ttl
	}
	return time.Hour
}

// Get returns the cached data for a key. Entries past their TTL are
// removed and reported as misses.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) >= e.ttl {
		delete(c.entries, key)
		logger.Debug("cache: expired %q", key)
		return nil, false
	}
	return e.data, true
}

// Set stores data under a key with the category's default TTL.
func (c *Cache) Set(key string, data any, category Category) {
	c.SetWithTTL(key, data, category, TTL(category))
}

// SetWithTTL stores data under a key with an explicit TTL.
//
// If the store is full, one eviction pass (expired entries first,
// then the oldest entry) is made and the write retried once. A second
// failure skips the write; caching is an optimization, never an error.
func (c *Cache) SetWithTTL(key string, data any, category Category, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.haveRoom(key) {
		c.evictLocked()
		if !c.haveRoom(key) {
			logger.Warn("cache: store full, skipping write for %q", key)
			return
		}
	}

	c.entries[key] = entry{
		data:      data,
		category:  category,
		createdAt: c.now(),
		ttl:       ttl,
	}
}

// haveRoom reports whether a write for key would fit. Overwrites of
// an existing key never need room.
func (c *Cache) haveRoom(key string) bool {
	if _, ok := c.entries[key]; ok {
		return true
	}
	return len(c.entries) < c.capacity
}

// evictLocked removes expired entries, then the oldest entry if
// nothing had expired. Caller holds the lock.
func (c *Cache) evictLocked() {
	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.createdAt) >= e.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		logger.Debug("cache: evicted %d expired entries", removed)
		return
	}

	oldestKey := ""
	var oldest time.Time
	for key, e := range c.entries {
		if oldestKey == "" || e.createdAt.Before(oldest) {
			oldestKey = key
			oldest = e.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
		logger.Debug("cache: evicted oldest entry %q", oldestKey)
	}
}

// InvalidateCategory removes every entry in a category, cascading to
// the categories derived from it.
func (c *Cache) InvalidateCategory(category Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked(category, map[Category]bool{})
}

func (c *Cache) invalidateLocked(category Category, seen map[Category]bool) {
	if seen[category] {
		return
	}
	seen[category] = true

	removed := 0
	for key, e := range c.entries {
		if e.category == category {
			delete(c.entries, key)
			removed++
		}
	}
	logger.Debug("cache: invalidated %d entries in category %s", removed, category)

	for _, dep := range categoryDependents[category] {
		c.invalidateLocked(dep, seen)
	}
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len returns the number of live entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Do collapses concurrent identical fetches: if a call for the same
// key is already in flight, the caller waits for its result instead
// of invoking fn again. The in-flight record is cleared when fn
// settles, or after the in-flight timeout if it never does.
//
// Do does not consult or populate the entry store; callers combine it
// with Get/Set so a fetch and its caching stay explicit.
func (c *Cache) Do(key string, fn func() (any, error)) (any, error) {
	c.mu.Lock()
	if fl, ok := c.pending[key]; ok {
		c.mu.Unlock()
		logger.Debug("cache: joining in-flight fetch for %q", key)
		<-fl.done
		return fl.data, fl.err
	}

	fl := &inflight{done: make(chan struct{})}
	c.pending[key] = fl
	c.mu.Unlock()

	timer := time.AfterFunc(c.inflightTimeout, func() {
		c.removeInflight(key, fl)
		logger.Warn("cache: in-flight fetch for %q timed out", key)
	})

	fl.data, fl.err = fn()

	timer.Stop()
	c.removeInflight(key, fl)
	close(fl.done)

	return fl.data, fl.err
}

// removeInflight deregisters an in-flight record if it is still the
// registered one for the key.
func (c *Cache) removeInflight(key string, fl *inflight) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.pending[key]; ok && current == fl {
		delete(c.pending, key)
	}
}
