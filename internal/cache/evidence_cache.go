// Package cache provides an optional Redis-backed tier for interaction
// evidence shared across processes. The resolver works without it; every
// cache failure degrades to a miss.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/pkg/openfda"
)

const evidenceKeyPrefix = "pediasafe:evidence:"

// EvidenceCache stores openFDA co-occurrence results in Redis keyed by the
// normalized drug pair.
type EvidenceCache struct {
	redis      *redis.Client
	defaultTTL time.Duration
	logger     *logrus.Logger
}

// NewEvidenceCache connects to Redis and verifies the connection with a ping.
func NewEvidenceCache(config domain.CacheConfig, logger *logrus.Logger) (*EvidenceCache, error) {
	opts, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &EvidenceCache{
		redis:      client,
		defaultTTL: config.DefaultTTL,
		logger:     logger,
	}, nil
}

// Get retrieves a cached co-occurrence result for the pair. A miss, a Redis
// error or a corrupt entry all return found=false; errors are logged at debug
// level and never surface to the caller.
func (c *EvidenceCache) Get(ctx context.Context, key domain.PairKey) (*openfda.CoOccurrenceResult, bool) {
	val, err := c.redis.Get(ctx, evidenceKeyPrefix+key.String()).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).Debug("Evidence cache read failed")
		return nil, false
	}

	var result openfda.CoOccurrenceResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		c.redis.Del(ctx, evidenceKeyPrefix+key.String())
		return nil, false
	}
	return &result, true
}

// Set stores a co-occurrence result for the pair with the default TTL.
// Failures are logged and swallowed.
func (c *EvidenceCache) Set(ctx context.Context, key domain.PairKey, result *openfda.CoOccurrenceResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.WithError(err).Debug("Evidence cache marshal failed")
		return
	}
	if err := c.redis.Set(ctx, evidenceKeyPrefix+key.String(), data, c.defaultTTL).Err(); err != nil {
		c.logger.WithError(err).Debug("Evidence cache write failed")
	}
}

// Close releases the Redis connection.
func (c *EvidenceCache) Close() error {
	return c.redis.Close()
}
