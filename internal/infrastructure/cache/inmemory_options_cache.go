package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/intranet/erp-backend/internal/domain/reference"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryOptionsCache implements reference.OptionsCache with local
// storage. It serves as the L1 tier in front of Redis.
type InMemoryOptionsCache struct {
	entries sync.Map // map[string]*optionsEntry
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type optionsEntry struct {
	items     []reference.OptionItem
	expiresAt time.Time
}

func (e *optionsEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryOptionsCacheOption is a functional option for configuring the cache
type InMemoryOptionsCacheOption func(*InMemoryOptionsCache)

// WithInMemoryCacheLogger sets the logger for the cache
func WithInMemoryCacheLogger(logger *zap.Logger) InMemoryOptionsCacheOption {
	return func(c *InMemoryOptionsCache) {
		c.logger = logger
	}
}

// NewInMemoryOptionsCache creates a new local options cache
func NewInMemoryOptionsCache(opts ...InMemoryOptionsCacheOption) *InMemoryOptionsCache {
	cache := &InMemoryOptionsCache{
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}

	for _, opt := range opts {
		opt(cache)
	}

	go cache.cleanupExpired()

	return cache
}

// Get retrieves an option list from the local cache
func (c *InMemoryOptionsCache) Get(_ context.Context, key string) ([]reference.OptionItem, bool, error) {
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*optionsEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return entry.items, true, nil
		}
		c.entries.Delete(key)
	}

	atomic.AddInt64(&c.misses, 1)
	return nil, false, nil
}

// Set stores an option list in the local cache
func (c *InMemoryOptionsCache) Set(_ context.Context, key string, items []reference.OptionItem, ttl time.Duration) error {
	c.entries.Store(key, &optionsEntry{
		items:     items,
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// Delete removes a single key
func (c *InMemoryOptionsCache) Delete(_ context.Context, key string) error {
	c.entries.Delete(key)
	return nil
}

// DeleteByPrefix removes every key with the given prefix
func (c *InMemoryOptionsCache) DeleteByPrefix(_ context.Context, prefix string) error {
	c.entries.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.entries.Delete(key)
		}
		return true
	})
	return nil
}

// Close stops the cleanup goroutine
func (c *InMemoryOptionsCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// Stats returns hit and miss counters
func (c *InMemoryOptionsCache) Stats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// cleanupExpired evicts expired entries in the background so the map
// does not grow unbounded between reads.
func (c *InMemoryOptionsCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.entries.Range(func(key, value any) bool {
				if value.(*optionsEntry).isExpired() {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}
