// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a very simple random-replacement cache, used to
// memoize compiled layout strings.
package cache

import (
	"sync"
)

// DefaultEntries is the default capacity of a cache.
const DefaultEntries = 1 << 10

// Cache is a simple random-replacement cache suitable to memoize expensive
// operations. As layout strings in a program tend to be a small, fixed set,
// eviction effectively never happens; the bound only guards against programs
// that generate layouts dynamically.
//
// Its zero value is safe to use. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxEntries is the maximum number of elements in the cache. If it is
	// zero, DefaultEntries is used.
	//
	// MaxEntries is not safe to mutate concurrently with calls to Get.
	MaxEntries int

	mu sync.RWMutex
	m  map[K]V
}

// Get the element associated with k from the cache, using fill to populate
// missing elements.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	if v, ok := c.m[k]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.m[k]; ok {
		// another goroutine filled the cache in the meantime
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	c.m[k] = nv
	max := c.MaxEntries
	if max == 0 {
		max = DefaultEntries
	}
	for k := range c.m {
		if len(c.m) <= max {
			break
		}
		delete(c.m, k)
	}
	return nv
}

// Evict the element for k from the cache. If there is no such element, Evict
// is a no-op.
func (c *Cache[K, V]) Evict(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, k)
}

// Flush removes all elements from the cache.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
