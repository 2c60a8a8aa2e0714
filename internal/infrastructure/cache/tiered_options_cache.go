package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/intranet/erp-backend/internal/domain/reference"
	infraconfig "github.com/intranet/erp-backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// OptionsCacheConfigFromSettings maps the cache section of the application
// configuration onto the domain cache configuration, keeping defaults for
// anything left unset.
func OptionsCacheConfigFromSettings(cfg infraconfig.CacheConfig) reference.OptionsCacheConfig {
	config := reference.DefaultOptionsCacheConfig()
	if cfg.OptionsTTL > 0 {
		config.OptionsTTL = cfg.OptionsTTL
	}
	return config
}

// TieredOptionsCache implements a two-tier caching strategy for option
// lists.
// L1: local in-memory cache (fast, per instance)
// L2: Redis (slower, shared across instances)
// Reads go through L1 then L2; invalidation fans out over Pub/Sub.
type TieredOptionsCache struct {
	l1Cache     *InMemoryOptionsCache
	l2Cache     *RedisOptionsCache
	invalidator *RedisOptionsInvalidator
	config      reference.OptionsCacheConfig
	logger      *zap.Logger

	// Concurrent loads of the same key collapse into one fetch
	inflightMu sync.Mutex
	inflight   map[string]*inflightLoad

	l1Hits   int64
	l1Misses int64
	l2Hits   int64
	l2Misses int64
}

type inflightLoad struct {
	done  chan struct{}
	items []reference.OptionItem
	err   error
}

// TieredOptionsCacheOption is a functional option for configuring the cache
type TieredOptionsCacheOption func(*TieredOptionsCache)

// WithTieredConfig sets the cache configuration
func WithTieredConfig(config reference.OptionsCacheConfig) TieredOptionsCacheOption {
	return func(c *TieredOptionsCache) {
		c.config = config
	}
}

// WithTieredLogger sets the logger for the cache
func WithTieredLogger(logger *zap.Logger) TieredOptionsCacheOption {
	return func(c *TieredOptionsCache) {
		c.logger = logger
	}
}

// NewTieredOptionsCache creates a new tiered options cache. The L2 cache
// and invalidator may be nil, in which case the cache degrades to L1 only.
func NewTieredOptionsCache(
	l1Cache *InMemoryOptionsCache,
	l2Cache *RedisOptionsCache,
	invalidator *RedisOptionsInvalidator,
	opts ...TieredOptionsCacheOption,
) *TieredOptionsCache {
	cache := &TieredOptionsCache{
		l1Cache:     l1Cache,
		l2Cache:     l2Cache,
		invalidator: invalidator,
		config:      reference.DefaultOptionsCacheConfig(),
		logger:      zap.NewNop(),
		inflight:    make(map[string]*inflightLoad),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// StartInvalidationSubscription listens for peer invalidation messages and
// applies them to the local tier. Call in a goroutine.
func (c *TieredOptionsCache) StartInvalidationSubscription(ctx context.Context) error {
	if c.invalidator == nil {
		return nil
	}

	return c.invalidator.Subscribe(ctx, func(msg reference.OptionsCacheUpdateMessage) {
		bg := context.Background()
		switch msg.Action {
		case reference.OptionsCacheActionDeleteKey:
			_ = c.l1Cache.Delete(bg, msg.Key)
		case reference.OptionsCacheActionDeletePrefix:
			_ = c.l1Cache.DeleteByPrefix(bg, msg.Prefix)
		}
	})
}

// GetOrLoad returns the cached option list for the key, loading it at most
// once per instance when absent. Concurrent callers for the same key wait
// for the single in-flight load instead of hitting the loader again.
func (c *TieredOptionsCache) GetOrLoad(
	ctx context.Context,
	key string,
	loader func(ctx context.Context) ([]reference.OptionItem, error),
) ([]reference.OptionItem, error) {
	if items, ok, _ := c.l1Cache.Get(ctx, key); ok {
		atomic.AddInt64(&c.l1Hits, 1)
		return items, nil
	}
	atomic.AddInt64(&c.l1Misses, 1)

	if c.l2Cache != nil {
		items, ok, err := c.l2Cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("L2 options cache read failed",
				zap.String("key", key),
				zap.Error(err))
		} else if ok {
			atomic.AddInt64(&c.l2Hits, 1)
			_ = c.l1Cache.Set(ctx, key, items, c.config.L1TTL)
			return items, nil
		}
		atomic.AddInt64(&c.l2Misses, 1)
	}

	c.inflightMu.Lock()
	if load, ok := c.inflight[key]; ok {
		c.inflightMu.Unlock()
		select {
		case <-load.done:
			return load.items, load.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	load := &inflightLoad{done: make(chan struct{})}
	c.inflight[key] = load
	c.inflightMu.Unlock()

	load.items, load.err = loader(ctx)
	if load.err == nil {
		_ = c.l1Cache.Set(ctx, key, load.items, c.config.L1TTL)
		if c.l2Cache != nil {
			if err := c.l2Cache.Set(ctx, key, load.items, c.config.OptionsTTL); err != nil {
				c.logger.Warn("L2 options cache write failed",
					zap.String("key", key),
					zap.Error(err))
			}
		}
	}

	c.inflightMu.Lock()
	delete(c.inflight, key)
	c.inflightMu.Unlock()
	close(load.done)

	return load.items, load.err
}

// Invalidate drops every option list of a tenant across all tiers and
// notifies peer instances.
func (c *TieredOptionsCache) Invalidate(ctx context.Context, prefix string) error {
	_ = c.l1Cache.DeleteByPrefix(ctx, prefix)

	if c.l2Cache != nil {
		if err := c.l2Cache.DeleteByPrefix(ctx, prefix); err != nil {
			return err
		}
	}
	if c.invalidator != nil {
		if err := c.invalidator.PublishDeletePrefix(ctx, prefix); err != nil {
			c.logger.Warn("Failed to broadcast options invalidation",
				zap.String("prefix", prefix),
				zap.Error(err))
		}
	}

	return nil
}

// InvalidateKey drops a single option list across all tiers
func (c *TieredOptionsCache) InvalidateKey(ctx context.Context, key string) error {
	_ = c.l1Cache.Delete(ctx, key)

	if c.l2Cache != nil {
		if err := c.l2Cache.Delete(ctx, key); err != nil {
			return err
		}
	}
	if c.invalidator != nil {
		if err := c.invalidator.PublishDeleteKey(ctx, key); err != nil {
			c.logger.Warn("Failed to broadcast options invalidation",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return nil
}

// Stats returns combined cache counters
func (c *TieredOptionsCache) Stats() reference.OptionsCacheStats {
	l1Hits := atomic.LoadInt64(&c.l1Hits)
	l1Misses := atomic.LoadInt64(&c.l1Misses)
	l2Hits := atomic.LoadInt64(&c.l2Hits)
	l2Misses := atomic.LoadInt64(&c.l2Misses)

	stats := reference.OptionsCacheStats{
		L1Hits:      l1Hits,
		L1Misses:    l1Misses,
		L2Hits:      l2Hits,
		L2Misses:    l2Misses,
		TotalHits:   l1Hits + l2Hits,
		TotalMisses: l2Misses,
	}
	total := stats.TotalHits + stats.TotalMisses
	if total > 0 {
		stats.HitRatio = float64(stats.TotalHits) / float64(total)
	}

	return stats
}

// Close releases both tiers and the invalidator
func (c *TieredOptionsCache) Close() error {
	_ = c.l1Cache.Close()
	if c.invalidator != nil {
		_ = c.invalidator.Close()
	}
	if c.l2Cache != nil {
		return c.l2Cache.Close()
	}
	return nil
}
