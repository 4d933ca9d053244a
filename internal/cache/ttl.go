package cache

import (
	"container/list"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidCapacity = errors.New("cache capacity must be positive")
	ErrNegativeTTL     = errors.New("cache ttl must be positive")
)

type entry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
}

// Stats are cumulative counters since construction. Clear does not reset them.
type Stats struct {
	Entries     int    `json:"entries"`
	Hits        uint64 `json:"hits"`
	Misses      uint64 `json:"misses"`
	Evictions   uint64 `json:"evictions"`
	Expirations uint64 `json:"expirations"`
}

// TTL is a bounded key/value store whose entries expire after a fixed
// lifetime. Expired entries are dropped lazily on read, when the store is
// full, and by an optional background janitor.
//
// Entries are kept in insertion order; when the store is full and nothing
// has expired, the oldest insertion is evicted.
type TTL[K comparable, V any] struct {
	mu         sync.Mutex
	items      map[K]*list.Element
	order      *list.List // front is the newest insertion
	defaultTTL time.Duration
	maxEntries int
	stats      Stats

	name   string
	clock  clock.Clock
	logger *slog.Logger
	group  singleflight.Group

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

type options struct {
	name            string
	clock           clock.Clock
	logger          *slog.Logger
	cleanupInterval time.Duration
}

type Option func(*options)

func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName labels the store in logs and registry listings.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithCleanupInterval starts a janitor that removes expired entries every d.
// Zero disables it.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) {
		o.cleanupInterval = d
	}
}

func New[K comparable, V any](defaultTTL time.Duration, maxEntries int, opts ...Option) (*TTL[K, V], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, maxEntries)
	}
	if defaultTTL <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrNegativeTTL, defaultTTL)
	}

	o := options{
		clock:  clock.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &TTL[K, V]{
		items:      make(map[K]*list.Element),
		order:      list.New(),
		defaultTTL: defaultTTL,
		maxEntries: maxEntries,
		name:       o.name,
		clock:      o.clock,
		logger:     o.logger,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go c.janitor(o.cleanupInterval)
	} else {
		close(c.done)
	}
	return c, nil
}

func (c *TTL[K, V]) Name() string {
	return c.name
}

// Set stores value under key with the default lifetime.
func (c *TTL[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key for ttl. A non-positive ttl falls back to
// the default lifetime.
func (c *TTL[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	expiresAt := now.Add(ttl)

	if el, ok := c.items[key]; ok {
		e := el.Value.(*entry[K, V])
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxEntries {
		c.removeExpiredLocked(now)
	}
	for c.order.Len() >= c.maxEntries {
		c.removeLocked(c.order.Back())
		c.stats.Evictions++
	}

	c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, expiresAt: expiresAt})
}

// Get returns the live value for key. An expired entry is deleted and
// reported as a miss.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	e := el.Value.(*entry[K, V])
	if !c.clock.Now().Before(e.expiresAt) {
		c.removeLocked(el)
		c.stats.Expirations++
		c.stats.Misses++
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

func (c *TTL[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeLocked(el)
	return true
}

func (c *TTL[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.order.Init()
}

// Len counts stored entries, including expired ones not yet collected.
func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *TTL[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Entries = c.order.Len()
	return s
}

// RemoveExpired drops every expired entry and returns how many were removed.
func (c *TTL[K, V]) RemoveExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeExpiredLocked(c.clock.Now())
}

// Close stops the janitor. The store stays usable afterwards.
func (c *TTL[K, V]) Close() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	<-c.done
}

func (c *TTL[K, V]) removeExpiredLocked(now time.Time) int {
	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*entry[K, V]).expiresAt) {
			c.removeLocked(el)
			removed++
		}
		el = prev
	}
	c.stats.Expirations += uint64(removed)
	return removed
}

func (c *TTL[K, V]) removeLocked(el *list.Element) {
	e := c.order.Remove(el).(*entry[K, V])
	delete(c.items, e.key)
}

func (c *TTL[K, V]) janitor(interval time.Duration) {
	defer close(c.done)
	ticker := c.clock.Ticker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			if n := c.RemoveExpired(); n > 0 {
				c.logger.Debug("removed expired cache entries",
					slog.String("cache", c.name),
					slog.Int("count", n))
			}
		}
	}
}
