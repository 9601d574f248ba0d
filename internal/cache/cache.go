// Package cache memoises computed patterns in memory.
package cache

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"honnef.co/go/spiro"
	"honnef.co/go/spiro/internal/config"
)

const defaultShards = 16

// Cache is a bounded map from query keys to patterns, split into shards
// that are locked independently. Each shard evicts its oldest entry once
// full. A nil *Cache is valid and caches nothing.
type Cache struct {
	shards []shard
}

type shard struct {
	mx      sync.RWMutex
	entries map[string][]spiro.Point
	order   []string
	limit   int
}

// New returns a cache holding up to capacity patterns in total. A capacity
// of zero or less disables caching and returns nil.
func New(capacity, shards int) *Cache {
	if capacity <= 0 {
		return nil
	}
	if shards <= 0 {
		shards = defaultShards
	}
	shards = min(shards, capacity)
	limit := (capacity + shards - 1) / shards

	c := &Cache{shards: make([]shard, shards)}
	for i := range c.shards {
		c.shards[i].entries = make(map[string][]spiro.Point, limit)
		c.shards[i].limit = limit
	}
	return c
}

// Provide returns the cache described by cfg.
func Provide(cfg config.Cache) *Cache {
	return New(cfg.Capacity, cfg.Shards)
}

func (c *Cache) shard(key string) *shard {
	return &c.shards[xxhash.Sum64String(key)%uint64(len(c.shards))]
}

// Get returns the pattern stored under key. Callers must not modify it.
func (c *Cache) Get(key string) ([]spiro.Point, bool) {
	if c == nil {
		return nil, false
	}
	s := c.shard(key)
	s.mx.RLock()
	defer s.mx.RUnlock()
	pts, ok := s.entries[key]
	return pts, ok
}

// Put stores pts under key. pts must not be modified afterwards.
func (c *Cache) Put(key string, pts []spiro.Point) {
	if c == nil {
		return
	}
	s := c.shard(key)
	s.mx.Lock()
	defer s.mx.Unlock()
	if _, ok := s.entries[key]; ok {
		s.entries[key] = pts
		return
	}
	if len(s.order) >= s.limit {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.entries, oldest)
	}
	s.entries[key] = pts
	s.order = append(s.order, key)
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mx.RLock()
		n += len(s.entries)
		s.mx.RUnlock()
	}
	return n
}

// GetOrCompute returns the pattern stored under key, computing and storing
// it with compute on a miss. Concurrent misses on the same key may compute
// it more than once.
func (c *Cache) GetOrCompute(key string, compute func() []spiro.Point) (pts []spiro.Point, hit bool) {
	if pts, ok := c.Get(key); ok {
		return pts, true
	}
	pts = compute()
	c.Put(key, pts)
	return pts, false
}
