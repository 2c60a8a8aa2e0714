package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/intranet/erp-backend/internal/domain/reference"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCloseTimeout = 5 * time.Second

// RedisOptionsInvalidator broadcasts option cache invalidations over
// Redis Pub/Sub so every instance drops its local copy.
type RedisOptionsInvalidator struct {
	client     *redis.Client
	ownsClient bool
	channel    string
	logger     *zap.Logger

	mu        sync.Mutex
	isRunning bool
	cancelFn  context.CancelFunc
	doneCh    chan struct{}
	doneOnce  sync.Once
}

// RedisOptionsInvalidatorOption is a functional option for the invalidator
type RedisOptionsInvalidatorOption func(*RedisOptionsInvalidator)

// WithInvalidatorChannel sets the Pub/Sub channel name
func WithInvalidatorChannel(channel string) RedisOptionsInvalidatorOption {
	return func(i *RedisOptionsInvalidator) {
		i.channel = channel
	}
}

// WithInvalidatorLogger sets the logger
func WithInvalidatorLogger(logger *zap.Logger) RedisOptionsInvalidatorOption {
	return func(i *RedisOptionsInvalidator) {
		i.logger = logger
	}
}

// NewRedisOptionsInvalidatorWithClient creates an invalidator on an existing
// client. The caller retains ownership of the client.
func NewRedisOptionsInvalidatorWithClient(client *redis.Client, opts ...RedisOptionsInvalidatorOption) *RedisOptionsInvalidator {
	invalidator := &RedisOptionsInvalidator{
		client:  client,
		channel: reference.DefaultOptionsCacheConfig().PubSubChannel,
		logger:  zap.NewNop(),
		doneCh:  make(chan struct{}),
	}

	for _, opt := range opts {
		opt(invalidator)
	}

	return invalidator
}

// Publish broadcasts a cache update message to all instances
func (i *RedisOptionsInvalidator) Publish(ctx context.Context, msg reference.OptionsCacheUpdateMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := i.client.Publish(ctx, i.channel, data).Err(); err != nil {
		i.logger.Error("Failed to publish options invalidation",
			zap.String("channel", i.channel),
			zap.Error(err))
		return fmt.Errorf("failed to publish message: %w", err)
	}

	i.logger.Debug("Published options invalidation",
		zap.String("action", string(msg.Action)),
		zap.String("prefix", msg.Prefix),
		zap.String("key", msg.Key))

	return nil
}

// PublishDeletePrefix broadcasts a prefix invalidation
func (i *RedisOptionsInvalidator) PublishDeletePrefix(ctx context.Context, prefix string) error {
	return i.Publish(ctx, reference.OptionsCacheUpdateMessage{
		Action: reference.OptionsCacheActionDeletePrefix,
		Prefix: prefix,
	})
}

// PublishDeleteKey broadcasts a single-key invalidation
func (i *RedisOptionsInvalidator) PublishDeleteKey(ctx context.Context, key string) error {
	return i.Publish(ctx, reference.OptionsCacheUpdateMessage{
		Action: reference.OptionsCacheActionDeleteKey,
		Key:    key,
	})
}

// Subscribe listens for invalidation messages and invokes the callback for
// each one. It blocks, so call it in a goroutine.
func (i *RedisOptionsInvalidator) Subscribe(ctx context.Context, callback func(msg reference.OptionsCacheUpdateMessage)) error {
	i.mu.Lock()
	if i.isRunning {
		i.mu.Unlock()
		return fmt.Errorf("subscription already running")
	}
	i.isRunning = true
	i.mu.Unlock()

	subCtx, cancel := context.WithCancel(ctx)
	i.mu.Lock()
	i.cancelFn = cancel
	i.mu.Unlock()

	pubsub := i.client.Subscribe(subCtx, i.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(subCtx); err != nil {
		i.mu.Lock()
		i.isRunning = false
		i.mu.Unlock()
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	i.logger.Info("Subscribed to options invalidation channel",
		zap.String("channel", i.channel))

	ch := pubsub.Channel()

	for {
		select {
		case <-subCtx.Done():
			i.mu.Lock()
			i.isRunning = false
			i.mu.Unlock()
			i.markDone()
			return subCtx.Err()
		case msg, ok := <-ch:
			if !ok {
				i.logger.Warn("Options invalidation channel closed")
				i.mu.Lock()
				i.isRunning = false
				i.mu.Unlock()
				i.markDone()
				return nil
			}

			var updateMsg reference.OptionsCacheUpdateMessage
			if err := json.Unmarshal([]byte(msg.Payload), &updateMsg); err != nil {
				i.logger.Error("Failed to unmarshal options invalidation",
					zap.String("payload", msg.Payload),
					zap.Error(err))
				continue
			}

			// Run the callback off the receive loop so a slow handler
			// cannot stall the subscription.
			go func(m reference.OptionsCacheUpdateMessage) {
				defer func() {
					if r := recover(); r != nil {
						i.logger.Error("Panic in options invalidation callback",
							zap.Any("panic", r))
					}
				}()
				callback(m)
			}(updateMsg)
		}
	}
}

func (i *RedisOptionsInvalidator) markDone() {
	i.doneOnce.Do(func() {
		close(i.doneCh)
	})
}

// Close stops the subscription and releases the client if owned
func (i *RedisOptionsInvalidator) Close() error {
	i.mu.Lock()
	cancelFn := i.cancelFn
	i.mu.Unlock()

	if cancelFn != nil {
		cancelFn()
		select {
		case <-i.doneCh:
		case <-time.After(defaultCloseTimeout):
			i.logger.Warn("Timeout waiting for subscription to stop")
		}
	}

	if i.ownsClient {
		return i.client.Close()
	}
	return nil
}
