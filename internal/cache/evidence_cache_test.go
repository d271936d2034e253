package cache

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pediasafe-screening-server/internal/domain"
	"github.com/pediasafe-screening-server/pkg/openfda"
)

// getTestCache returns a cache backed by a live Redis.
// Skip test if TEST_REDIS_URL is not set.
func getTestCache(t *testing.T) *EvidenceCache {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set, skipping Redis tests")
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cache, err := NewEvidenceCache(domain.CacheConfig{
		RedisURL:   redisURL,
		DefaultTTL: time.Minute,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { cache.Close() })
	return cache
}

func TestEvidenceCache_SetAndGet(t *testing.T) {
	cache := getTestCache(t)
	ctx := context.Background()

	key := domain.NewPairKey("warfarin", "ibuprofen")
	stored := &openfda.CoOccurrenceResult{
		Found:     true,
		Reactions: []string{"Haemorrhage", "Nausea"},
		Source:    "OpenFDA Adverse Events Database",
	}

	cache.Set(ctx, key, stored)

	loaded, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.Equal(t, stored, loaded)
}

func TestEvidenceCache_Miss(t *testing.T) {
	cache := getTestCache(t)

	_, ok := cache.Get(context.Background(), domain.NewPairKey("nosuch", "pair"))
	assert.False(t, ok)
}

func TestEvidenceCache_NotFoundResultsAreCached(t *testing.T) {
	cache := getTestCache(t)
	ctx := context.Background()

	key := domain.NewPairKey("cetirizine", "loratadine")
	cache.Set(ctx, key, &openfda.CoOccurrenceResult{Found: false})

	loaded, ok := cache.Get(ctx, key)
	require.True(t, ok)
	assert.False(t, loaded.Found)
}

func TestNewEvidenceCache_BadURL(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	_, err := NewEvidenceCache(domain.CacheConfig{RedisURL: "not-a-url"}, logger)
	assert.Error(t, err)
}
