package cache

import (
	"github.com/dgraph-io/ristretto"
)

// SlugCache maps shop slugs to shop IDs. Slugs are stable, so entries live
// until ristretto's admission policy evicts them.
type SlugCache struct {
	cache *ristretto.Cache
}

func NewSlugCache(maxSizePow2 int) (*SlugCache, error) {
	maxCost := max(1, int64(1)<<maxSizePow2)
	numCounters := max(1, maxCost/32) // slug plus an int64 is well under 32 bytes

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: numCounters,
		MaxCost:     maxCost,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &SlugCache{cache: cache}, nil
}

func (c *SlugCache) Get(slug string) (int64, bool) {
	val, found := c.cache.Get(slug)
	if !found {
		return 0, false
	}
	return val.(int64), true
}

func (c *SlugCache) Set(slug string, shopID int64) {
	c.cache.Set(slug, shopID, int64(len(slug)+8))
}

func (c *SlugCache) Delete(slug string) {
	c.cache.Del(slug)
}

// Wait blocks until buffered writes are applied.
func (c *SlugCache) Wait() {
	c.cache.Wait()
}

func (c *SlugCache) Close() {
	c.cache.Close()
}

func (c *SlugCache) Stats() (hits, misses uint64, ratio float64) {
	m := c.cache.Metrics
	return m.Hits(), m.Misses(), m.Ratio()
}
