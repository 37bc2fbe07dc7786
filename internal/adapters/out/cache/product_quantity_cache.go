// Package cache keeps derived sales figures in process memory.
package cache

import (
	"context"
	"sync"
	"time"

	"sales/internal/core/domain/model/kernel"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUProductQuantityCache is a size bounded cache of sold product quantities.
// Entries expire after ttl even when no sale touching the product changes,
// which bounds staleness when another instance wrote the sale.
//
// Every invalidation advances one generation shared by all keys. A fill
// carrying an older generation is rejected.
type LRUProductQuantityCache struct {
	lru *expirable.LRU[string, kernel.Quantity]

	mu         sync.Mutex
	generation uint64
}

// NewLRUProductQuantityCache creates a cache holding at most size entries for ttl each.
// A ttl of zero keeps entries until they are evicted or invalidated.
func NewLRUProductQuantityCache(size int, ttl time.Duration) *LRUProductQuantityCache {
	return &LRUProductQuantityCache{
		lru: expirable.NewLRU[string, kernel.Quantity](size, nil, ttl),
	}
}

func (c *LRUProductQuantityCache) Get(_ context.Context, key string) (kernel.Quantity, bool) {
	return c.lru.Get(key)
}

func (c *LRUProductQuantityCache) Generation(_ context.Context) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Set stores quantity unless an invalidation happened after generation was taken.
// It reports whether the value was stored.
func (c *LRUProductQuantityCache) Set(
	_ context.Context,
	key string,
	quantity kernel.Quantity,
	generation uint64,
) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return false
	}
	c.lru.Add(key, quantity)
	return true
}

// Invalidate drops key. Missing keys are not an error.
func (c *LRUProductQuantityCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Remove(key)
	return nil
}

// Len returns the number of cached entries, expired ones included until they are purged.
func (c *LRUProductQuantityCache) Len() int {
	return c.lru.Len()
}
