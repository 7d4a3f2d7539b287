// Package cache implements the read-through response cache used by listing endpoints.
package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/wellnest/internal/pkg/constants"
	"github.com/piresc/wellnest/internal/pkg/database"
	"github.com/piresc/wellnest/internal/pkg/logger"
	"github.com/piresc/wellnest/internal/pkg/metrics"
)

// ReadThrough stores serialized responses in Redis under deterministic keys
type ReadThrough struct {
	redis *database.RedisClient
	ttl   time.Duration
}

// NewReadThrough creates a read-through cache whose entries live for ttl
func NewReadThrough(redis *database.RedisClient, ttl time.Duration) *ReadThrough {
	return &ReadThrough{redis: redis, ttl: ttl}
}

// Key derives the cache key for a request. Query parameters are sorted by name,
// and values keep their order, so equivalent requests share a key.
func Key(prefix, path string, query url.Values) string {
	return prefix + path + ":" + query.Encode()
}

// Lookup returns the cached payload for key. Any store failure is reported as a miss
// so callers fall through to the primary read.
func (c *ReadThrough) Lookup(ctx context.Context, key string) ([]byte, bool) {
	family := familyOf(key)

	payload, err := c.redis.GetBytes(ctx, key)
	if err != nil {
		if !database.IsRedisNil(err) {
			logger.WarnCtx(ctx, "Cache lookup failed, treating as miss",
				logger.String("key", key),
				logger.Err(err))
		}
		metrics.RecordCacheLookup(family, false)
		return nil, false
	}

	metrics.RecordCacheLookup(family, true)
	return payload, true
}

var errStaleGeneration = errors.New("cache generation changed")

// Generation returns the invalidation counter of key's family. Read it before the
// primary read and hand it to Store.
func (c *ReadThrough) Generation(ctx context.Context, key string) (int64, error) {
	gen, err := c.redis.GetClient().Get(ctx, generationKey(familyOf(key))).Int64()
	if database.IsRedisNil(err) {
		return 0, nil
	}
	return gen, err
}

// Store writes payload under key with the cache TTL, unless the family was
// invalidated since gen was read. Failures are logged and dropped.
func (c *ReadThrough) Store(ctx context.Context, key string, payload []byte, gen int64) {
	genKey := generationKey(familyOf(key))
	err := c.redis.GetClient().Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !database.IsRedisNil(err) {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr):
		logger.InfoCtx(ctx, "Cache invalidated during read, entry not stored",
			logger.String("key", key))
	default:
		logger.WarnCtx(ctx, "Failed to populate cache",
			logger.String("key", key),
			logger.Err(err))
	}
}

// InvalidatePrefix bumps the family generation, so in-flight reads do not
// repopulate it, then deletes every entry whose key starts with prefix.
func (c *ReadThrough) InvalidatePrefix(ctx context.Context, prefix string) (int, error) {
	bumpErr := c.redis.GetClient().Incr(ctx, generationKey(familyOf(prefix))).Err()

	removed, err := c.redis.ScanDelete(ctx, prefix+"*")
	metrics.RecordCacheInvalidation(familyOf(prefix), removed)
	if err != nil {
		return removed, err
	}
	if bumpErr != nil {
		return removed, bumpErr
	}

	logger.InfoCtx(ctx, "Cache invalidated",
		logger.String("prefix", prefix),
		logger.Int("removed", removed))
	return removed, nil
}

func generationKey(family string) string {
	return fmt.Sprintf(constants.KeyCacheGeneration, family)
}

func familyOf(key string) string {
	if i := strings.Index(key, ":"); i > 0 {
		return key[:i]
	}
	return key
}
