package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoRateTableCache keeps recently fetched exchange-rate tables so
// request bursts do not hammer the free rate API. Entries expire after ttl.
type RistrettoRateTableCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewRateTableCache(maxItems int64, ttl time.Duration) (*RistrettoRateTableCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create rate table cache failed: %w", err)
	}
	return &RistrettoRateTableCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoRateTableCache) Get(base string) (map[string]float64, bool) {
	if v, ok := c.cache.Get(base); ok {
		rates, ok := v.(map[string]float64)
		return rates, ok
	}
	return nil, false
}

func (c *RistrettoRateTableCache) Set(base string, rates map[string]float64) {
	c.cache.SetWithTTL(base, rates, 1, c.ttl)
	// make the entry visible to immediate readers
	c.cache.Wait()
}

func (c *RistrettoRateTableCache) Close() { c.cache.Close() }
