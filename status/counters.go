package status

import (
	"slices"
	"sync"
	"sync/atomic"
)

// Counters holds named int64 counters
// Lookups create on first use under the lock; callers keep the returned pointer and add to it directly
type Counters struct {
	mu    sync.Mutex
	byKey map[string]*atomic.Int64
}

// NewCounters creates an empty counter set
func NewCounters() *Counters {
	return &Counters{byKey: make(map[string]*atomic.Int64)}
}

// Get returns the counter for key, registering it at zero if new
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctr, ok := c.byKey[key]
	if !ok {
		ctr = new(atomic.Int64)
		c.byKey[key] = ctr
	}
	return ctr
}

// Keys returns the registered names in ascending order
func (c *Counters) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.byKey))
	for k := range c.byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Value reads a counter without registering it; unknown keys read as zero
func (c *Counters) Value(key string) int64 {
	c.mu.Lock()
	ctr, ok := c.byKey[key]
	c.mu.Unlock()
	if !ok {
		return 0
	}
	return ctr.Load()
}
