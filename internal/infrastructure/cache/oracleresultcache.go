package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"civicroute/internal/domain/incident"
	"civicroute/internal/shared/logger"
)

const (
	// oracleKeyPrefix is the prefix for all cached oracle results
	oracleKeyPrefix = "oracle_similar:"
	// DefaultOracleResultTTL bounds how long a nearest-neighbor answer stays
	// valid. New complaints arrive continuously, so stale answers only cost
	// a missed link, never a wrong one.
	DefaultOracleResultTTL = 10 * time.Minute
)

// CachingSimilarityOracle is a read-through cache in front of the similarity
// oracle. Cache failures degrade to a direct oracle call.
type CachingSimilarityOracle struct {
	inner  incident.SimilarityOracle
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachingSimilarityOracle(
	inner incident.SimilarityOracle,
	client *redis.Client,
	ttl time.Duration,
	logger logger.Interface,
) *CachingSimilarityOracle {
	if ttl <= 0 {
		ttl = DefaultOracleResultTTL
	}
	return &CachingSimilarityOracle{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

var _ incident.SimilarityOracle = (*CachingSimilarityOracle)(nil)

func (c *CachingSimilarityOracle) FindSimilar(ctx context.Context, embedding []float64, k int) ([]incident.Match, error) {
	key, err := c.buildKey(embedding, k)
	if err != nil {
		return c.inner.FindSimilar(ctx, embedding, k)
	}

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var matches []incident.Match
		if err := json.Unmarshal(cached, &matches); err == nil {
			return matches, nil
		}
		c.logger.Warnw("corrupt cached oracle result, refetching", "key", key)
	} else if err != redis.Nil {
		c.logger.Warnw("failed to read oracle cache", "error", err)
	}

	matches, err := c.inner.FindSimilar(ctx, embedding, k)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(matches); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warnw("failed to write oracle cache", "error", err)
		}
	}

	return matches, nil
}

// buildKey hashes the embedding so the key stays short regardless of vector
// dimension. Format: oracle_similar:{k}:{sha256(embedding)}
func (c *CachingSimilarityOracle) buildKey(embedding []float64, k int) (string, error) {
	raw, err := json.Marshal(embedding)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s%d:%s", oracleKeyPrefix, k, hex.EncodeToString(sum[:])), nil
}
