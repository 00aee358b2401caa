package cache

import (
	"sync"
	"time"
)

// Item represents a cached value with expiration
type Item struct {
	Data      any
	ExpiresAt time.Time
}

// Cache is a simple in-memory TTL cache used to memoize computed report
// rowsets between dashboard refreshes.
type Cache struct {
	items map[string]Item
	mutex sync.RWMutex
}

// New creates a new cache instance
func New() *Cache {
	return &Cache{items: make(map[string]Item)}
}

// Get retrieves an item from the cache. Expired items are removed lazily.
func (c *Cache) Get(key string) (any, bool) {
	c.mutex.RLock()
	item, exists := c.items[key]
	c.mutex.RUnlock()

	if !exists {
		return nil, false
	}
	if time.Now().After(item.ExpiresAt) {
		c.mutex.Lock()
		delete(c.items, key)
		c.mutex.Unlock()
		return nil, false
	}
	return item.Data, true
}

// Set stores an item in the cache with TTL
func (c *Cache) Set(key string, data any, ttl time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items[key] = Item{Data: data, ExpiresAt: time.Now().Add(ttl)}
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = make(map[string]Item)
}
