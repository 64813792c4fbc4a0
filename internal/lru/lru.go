package lru

import (
	"container/list"
	"sync"
)

// DefaultCapacity is used when a non positive capacity is supplied
const DefaultCapacity = 512

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Cache is a bounded least recently used cache safe for concurrent use
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
}

// New creates a cache holding up to capacity entries
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns cached value, marking it as recently used
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores a value, evicting the least recently used entry when full
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// Load returns cached value or stores and returns the one computed by fn.
// fn runs outside the lock, concurrent loaders of the same key may both run it.
func (c *Cache[K, V]) Load(key K, fn func(key K) V) V {
	if value, ok := c.Get(key); ok {
		return value
	}
	value := fn(key)
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(entry[K, V]).value
	}
	c.set(key, value)
	return value
}

// Len returns number of cached entries
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Purge removes all entries
func (c *Cache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*list.Element, c.capacity)
	c.order.Init()
}

func (c *Cache[K, V]) set(key K, value V) {
	if elem, ok := c.items[key]; ok {
		elem.Value = entry[K, V]{key: key, value: value}
		c.order.MoveToFront(elem)
		return
	}
	c.items[key] = c.order.PushFront(entry[K, V]{key: key, value: value})
	if c.order.Len() <= c.capacity {
		return
	}
	if last := c.order.Back(); last != nil {
		c.order.Remove(last)
		delete(c.items, last.Value.(entry[K, V]).key)
	}
}
