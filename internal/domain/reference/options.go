package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OptionItem is one selectable entry in a dropdown option list
type OptionItem struct {
	Value uuid.UUID `json:"value"`
	Label string    `json:"label"`
	Color string    `json:"color,omitempty"`
}

// OptionsCacheKey builds the cache key for a tenant's option list.
// Keys are prefixed per tenant so invalidation can target one tenant.
func OptionsCacheKey(tenantID uuid.UUID, module string) string {
	return fmt.Sprintf("%s%s", OptionsCachePrefix(tenantID), module)
}

// OptionsCachePrefix returns the key prefix covering every option list
// of a tenant.
func OptionsCachePrefix(tenantID uuid.UUID) string {
	return fmt.Sprintf("options:%s:", tenantID.String())
}

// OptionsCache caches computed option lists
type OptionsCache interface {
	// Get returns the cached list and whether it was present
	Get(ctx context.Context, key string) ([]OptionItem, bool, error)
	// Set stores the list under the key with the given TTL
	Set(ctx context.Context, key string, items []OptionItem, ttl time.Duration) error
	// Delete removes a single key
	Delete(ctx context.Context, key string) error
	// DeleteByPrefix removes every key with the given prefix
	DeleteByPrefix(ctx context.Context, prefix string) error
	// Close releases cache resources
	Close() error
}

// OptionsCacheConfig holds tuning for the tiered options cache
type OptionsCacheConfig struct {
	// OptionsTTL is the time-to-live in the shared (L2) cache
	OptionsTTL time.Duration
	// L1TTL is the time-to-live in the local (L1) cache
	L1TTL time.Duration
	// PubSubChannel is the Redis Pub/Sub channel for invalidation
	PubSubChannel string
}

// DefaultOptionsCacheConfig returns the default cache configuration
func DefaultOptionsCacheConfig() OptionsCacheConfig {
	return OptionsCacheConfig{
		OptionsTTL:    5 * time.Minute,
		L1TTL:         30 * time.Second,
		PubSubChannel: "options:updates",
	}
}

// OptionsCacheStats holds cache performance counters
type OptionsCacheStats struct {
	L1Hits      int64   `json:"l1_hits"`
	L1Misses    int64   `json:"l1_misses"`
	L2Hits      int64   `json:"l2_hits"`
	L2Misses    int64   `json:"l2_misses"`
	TotalHits   int64   `json:"total_hits"`
	TotalMisses int64   `json:"total_misses"`
	HitRatio    float64 `json:"hit_ratio"`
}

// OptionsCacheUpdateAction identifies the kind of invalidation message
type OptionsCacheUpdateAction string

const (
	OptionsCacheActionDeleteKey    OptionsCacheUpdateAction = "delete_key"
	OptionsCacheActionDeletePrefix OptionsCacheUpdateAction = "delete_prefix"
)

// OptionsCacheUpdateMessage is broadcast to peers when option data changes
type OptionsCacheUpdateMessage struct {
	Action OptionsCacheUpdateAction `json:"action"`
	Key    string                   `json:"key,omitempty"`
	Prefix string                   `json:"prefix,omitempty"`
}
