// SPDX-License-Identifier: MIT

package evolution

import (
	"sync"

	"github.com/katalvlaran/eko/kernels"
)

type fingerprint struct {
	nf     int
	a0, a1 float64
	order  int
}

// Cache shares segment integrals between paths with common segments,
// e.g. the lower segments of targets above the same threshold. It is safe
// for concurrent use; a nil *Cache disables sharing.
type Cache struct {
	mu      sync.Mutex
	entries map[fingerprint]*kernels.Integrals
	hits    int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[fingerprint]*kernels.Integrals)}
}

// Len returns the number of cached segments.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Hits returns how many lookups were served from the cache.
func (c *Cache) Hits() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.hits
}

func (c *Cache) integrals(key fingerprint, opts []kernels.Option) (*kernels.Integrals, error) {
	if c == nil {
		return kernels.NewIntegrals(key.a0, key.a1, key.nf, key.order, opts...)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if in, ok := c.entries[key]; ok {
		c.hits++
		return in, nil
	}
	in, err := kernels.NewIntegrals(key.a0, key.a1, key.nf, key.order, opts...)
	if err != nil {
		return nil, err
	}
	c.entries[key] = in

	return in, nil
}
