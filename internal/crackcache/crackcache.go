// Package crackcache wraps a ristretto cache as the hash-hex -> plaintext
// memoization layer the Cracker consults: cost of
// an entry is the plaintext's byte length, eviction is TinyLFU-class
// admission control, and the cache is internally concurrent (no external
// locking required).
//
// This is the Go counterpart of the `stretto` cache the original Rust
// implementation uses directly, without its own external mutex.
package crackcache

import (
	"github.com/dgraph-io/ristretto"

	"github.com/hashassin/hashassin/internal/herrors"
)

// Cache is a bounded, concurrent hash-hex -> plaintext cache.
type Cache struct {
	inner *ristretto.Cache
}

// New builds a Cache with the given maximum cost (total plaintext bytes it
// may hold at once). A maxCost of 0 is rejected by ristretto, so callers
// that want "no cache" should simply pass a nil *Cache around instead of
// calling New.
func New(maxCost int64) (*Cache, error) {
	inner, err := ristretto.NewCache(&ristretto.Config{
		// NumCounters sizing follows ristretto's own rule of thumb: ~10x
		// the number of items you expect to hold. Plaintexts are short
		// (<=255 bytes), so we size counters off maxCost directly rather
		// than a separate item-count estimate.
		NumCounters: maxCost * 10,
		MaxCost:     maxCost,
		BufferItems: 64,
	})
	if err != nil {
		return nil, herrors.Wrap(herrors.Internal, err, "failed to construct crack cache")
	}
	return &Cache{inner: inner}, nil
}

// Get returns the plaintext cached for key, if present.
func (c *Cache) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.inner.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set inserts plaintext under key, with cost equal to its byte length. The
// insert may be silently dropped under ristretto's admission policy.
func (c *Cache) Set(key, plaintext string) {
	if c == nil {
		return
	}
	c.inner.Set(key, plaintext, int64(len(plaintext)))
}

// Close releases the cache's background goroutines.
func (c *Cache) Close() {
	if c == nil {
		return
	}
	c.inner.Close()
}
