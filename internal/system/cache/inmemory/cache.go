/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package inmemory provides an in-memory cache implementation with LRU eviction.
package inmemory

import (
	"container/list"
	"sync"
	"time"

	"github.com/asgardeo/flowkit/internal/system/cache/constants"
	"github.com/asgardeo/flowkit/internal/system/cache/model"
	"github.com/asgardeo/flowkit/internal/system/log"
)

const loggerComponentName = "InMemoryCache"

// cacheEntry represents an entry in the in-memory cache with access metadata.
type cacheEntry[T any] struct {
	*model.CacheEntry[T]
	listElement *list.Element
}

// InMemoryCache implements the CacheInterface for an in-memory cache with LRU eviction.
type InMemoryCache[T any] struct {
	name        string
	enabled     bool
	cache       map[model.CacheKey]*cacheEntry[T]
	accessOrder *list.List
	mu          sync.Mutex
	size        int
	ttl         time.Duration
}

// NewInMemoryCache creates a new instance of InMemoryCache.
func NewInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration) model.CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !enabled {
		logger.Debug("In-memory cache is disabled, returning empty cache", log.String("name", name))
		return &InMemoryCache[T]{name: name, enabled: false}
	}

	cacheSize := size
	if cacheSize <= 0 {
		cacheSize = constants.DefaultCacheSize
	}

	cacheTTL := ttl
	if cacheTTL <= 0 {
		cacheTTL = constants.DefaultCacheTTL * time.Second
	}

	logger.Debug("Initializing in-memory cache", log.String("name", name),
		log.Int("size", cacheSize), log.Any("ttl", cacheTTL))

	return &InMemoryCache[T]{
		name:        name,
		enabled:     true,
		cache:       make(map[model.CacheKey]*cacheEntry[T]),
		accessOrder: list.New(),
		size:        cacheSize,
		ttl:         cacheTTL,
	}
}

// Set adds or updates an entry in the cache.
func (c *InMemoryCache[T]) Set(key model.CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := time.Now().Add(c.ttl)

	if existing, exists := c.cache[key]; exists {
		existing.Value = value
		existing.ExpiryTime = expiryTime
		c.accessOrder.MoveToFront(existing.listElement)
		return nil
	}

	c.cache[key] = &cacheEntry[T]{
		CacheEntry: &model.CacheEntry[T]{
			Value:      value,
			ExpiryTime: expiryTime,
		},
		listElement: c.accessOrder.PushFront(key),
	}

	if len(c.cache) > c.size {
		c.evictOldest()
	}

	return nil
}

// Get retrieves a value from the cache.
func (c *InMemoryCache[T]) Get(key model.CacheKey) (T, bool) {
	var zero T
	if !c.enabled {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache[key]
	if !exists {
		return zero, false
	}

	if time.Now().After(entry.ExpiryTime) {
		c.removeEntry(key, entry)
		return zero, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	return entry.Value, true
}

// Delete removes a value from the cache.
func (c *InMemoryCache[T]) Delete(key model.CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.cache[key]; exists {
		c.removeEntry(key, entry)
	}
	return nil
}

// Clear removes all entries in the cache.
func (c *InMemoryCache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[model.CacheKey]*cacheEntry[T])
	c.accessOrder.Init()
	return nil
}

// IsEnabled returns whether the cache is enabled.
func (c *InMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// GetName returns the name of the cache.
func (c *InMemoryCache[T]) GetName() string {
	return c.name
}

// CleanupExpired removes all expired entries from the cache.
func (c *InMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.After(entry.ExpiryTime) {
			c.removeEntry(key, entry)
		}
	}
}

// evictOldest removes the least recently used entry. The caller must hold the lock.
func (c *InMemoryCache[T]) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}
	key := oldest.Value.(model.CacheKey)
	if entry, exists := c.cache[key]; exists {
		c.removeEntry(key, entry)
	}
}

// removeEntry removes an entry from the map and the access list. The caller must hold the lock.
func (c *InMemoryCache[T]) removeEntry(key model.CacheKey, entry *cacheEntry[T]) {
	c.accessOrder.Remove(entry.listElement)
	delete(c.cache, key)
}
