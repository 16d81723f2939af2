package cache

import (
	"fmt"

	"github.com/pardhasaradhiswargam-byte/authentication-for-iare/internal/infrastructure/config"
	"go.uber.org/zap"
)

// SummaryCacheFactory picks the dashboard summary cache backend.
type SummaryCacheFactory struct {
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// SummaryCacheFactoryOption customizes the factory.
type SummaryCacheFactoryOption func(*SummaryCacheFactory)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *zap.Logger) SummaryCacheFactoryOption {
	return func(f *SummaryCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls the fallback to an in-memory cache when
// Redis is unreachable. Enabled unless switched off.
func WithInMemoryFallback(allow bool) SummaryCacheFactoryOption {
	return func(f *SummaryCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewSummaryCacheFactory builds a factory over the Redis settings.
func NewSummaryCacheFactory(cfg config.RedisConfig, opts ...SummaryCacheFactoryOption) *SummaryCacheFactory {
	f := &SummaryCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache connects a Redis-backed summary cache.
func (f *SummaryCacheFactory) CreateRedisCache() (SummaryCache, error) {
	cache, err := NewRedisSummaryCache(RedisConfig{
		Host:     f.redisConfig.Host,
		Port:     f.redisConfig.Port,
		Password: f.redisConfig.Password,
		DB:       f.redisConfig.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis summary cache: %w", err)
	}

	return cache, nil
}

// CreateInMemoryCache returns a process-local cache, fine for a single
// instance and for tests.
func (f *SummaryCacheFactory) CreateInMemoryCache() SummaryCache {
	return NewInMemorySummaryCache()
}

// CreateCache tries Redis first and, when fallback is allowed, degrades to
// the in-memory cache instead of failing startup.
func (f *SummaryCacheFactory) CreateCache() (SummaryCache, error) {
	cache, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("Using Redis summary cache",
			zap.String("host", f.redisConfig.Host),
			zap.Int("port", f.redisConfig.Port),
		)
		return cache, nil
	}

	if !f.allowInMemoryFallback {
		return nil, err
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory summary cache",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
