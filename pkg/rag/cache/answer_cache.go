package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "advisor:answer:"

// AnswerCache memoizes generated answers in Redis, keyed by a hash of the
// normalized question. A nil cache is a no-op so the chain can run without
// Redis.
type AnswerCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnswerCache(rdb *redis.Client, ttl time.Duration) *AnswerCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &AnswerCache{rdb: rdb, ttl: ttl}
}

// Key hashes a question after trimming and lower-casing, so trivial
// formatting differences share one cache slot.
func Key(question string) string {
	normalized := strings.ToLower(strings.TrimSpace(question))
	sum := sha256.Sum256([]byte(normalized))
	return keyPrefix + hex.EncodeToString(sum[:])
}

func (c *AnswerCache) Get(ctx context.Context, question string) (string, bool) {
	if c == nil {
		return "", false
	}
	val, err := c.rdb.Get(ctx, Key(question)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			// Cache trouble must never fail a request.
			return "", false
		}
		return "", false
	}
	return val, true
}

func (c *AnswerCache) Set(ctx context.Context, question, answer string) {
	if c == nil {
		return
	}
	_ = c.rdb.Set(ctx, Key(question), answer, c.ttl).Err()
}
