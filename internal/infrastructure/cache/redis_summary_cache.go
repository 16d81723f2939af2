package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSummaryCache implements SummaryCache using Redis
// This is suitable for distributed deployments where multiple instances
// should serve the same cached summary
type RedisSummaryCache struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisSummaryCache creates a new Redis-based summary cache
func NewRedisSummaryCache(cfg RedisConfig) (*RedisSummaryCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisSummaryCache{
		client:    client,
		keyPrefix: "dashboard:summary:",
	}, nil
}

// NewRedisSummaryCacheWithClient creates a cache with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisSummaryCacheWithClient(client *redis.Client, keyPrefix string) *RedisSummaryCache {
	if keyPrefix == "" {
		keyPrefix = "dashboard:summary:"
	}
	return &RedisSummaryCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cached value for key
func (c *RedisSummaryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read summary cache: %w", err)
	}
	return value, true, nil
}

// Set stores a value under key with the given TTL
func (c *RedisSummaryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write summary cache: %w", err)
	}
	return nil
}

// Invalidate removes a cached value
func (c *RedisSummaryCache) Invalidate(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (c *RedisSummaryCache) GetClient() *redis.Client {
	return c.client
}

// Ensure RedisSummaryCache implements SummaryCache
var _ SummaryCache = (*RedisSummaryCache)(nil)
