package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisConfig holds the connection settings for the cache client
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// RedisOptionsCache implements reference.OptionsCache backed by Redis.
// It is the shared L2 tier, visible to every instance.
type RedisOptionsCache struct {
	client     *redis.Client
	ownsClient bool
	logger     *zap.Logger
}

// RedisOptionsCacheOption is a functional option for configuring the cache
type RedisOptionsCacheOption func(*RedisOptionsCache)

// WithRedisCacheLogger sets the logger for the cache
func WithRedisCacheLogger(logger *zap.Logger) RedisOptionsCacheOption {
	return func(c *RedisOptionsCache) {
		c.logger = logger
	}
}

// NewRedisOptionsCache creates a cache with its own Redis connection
func NewRedisOptionsCache(cfg RedisConfig, opts ...RedisOptionsCacheOption) (*RedisOptionsCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	cache := &RedisOptionsCache{
		client:     client,
		ownsClient: true,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache, nil
}

// NewRedisOptionsCacheWithClient creates a cache with an existing Redis client.
// The caller retains ownership of the client and is responsible for closing it.
func NewRedisOptionsCacheWithClient(client *redis.Client, opts ...RedisOptionsCacheOption) *RedisOptionsCache {
	cache := &RedisOptionsCache{
		client:     client,
		ownsClient: false,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get retrieves an option list from Redis
func (c *RedisOptionsCache) Get(ctx context.Context, key string) ([]reference.OptionItem, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get options from Redis: %w", err)
	}

	var items []reference.OptionItem
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt entry, drop it and treat as a miss
		c.logger.Warn("Dropping unreadable options cache entry",
			zap.String("key", key),
			zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}

	return items, true, nil
}

// Set stores an option list in Redis
func (c *RedisOptionsCache) Set(ctx context.Context, key string, items []reference.OptionItem, ttl time.Duration) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal options: %w", err)
	}

	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set options in Redis: %w", err)
	}

	return nil
}

// Delete removes a single key
func (c *RedisOptionsCache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete options from Redis: %w", err)
	}
	return nil
}

// DeleteByPrefix removes every key matching the prefix using SCAN so the
// server is not blocked by a KEYS call.
func (c *RedisOptionsCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := c.client.Scan(ctx, 0, prefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) >= 100 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete options batch: %w", err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan options keys: %w", err)
	}
	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to delete options batch: %w", err)
		}
	}

	return nil
}

// Close releases the Redis connection if this cache owns it
func (c *RedisOptionsCache) Close() error {
	if c.ownsClient {
		return c.client.Close()
	}
	return nil
}

// GetClient exposes the underlying client for sharing with the invalidator
func (c *RedisOptionsCache) GetClient() *redis.Client {
	return c.client
}
