package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kisanmitra/backend/internal/domain"
)

const keyPrefix = "chat:reply:"

// ReplyCache stores model replies in redis so repeated questions with the
// same dashboard context skip the model call.
type ReplyCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to the redis instance at url and pings it
func New(url string, ttl time.Duration) (*ReplyCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("cache: invalid redis url: %w", err)
	}

	c := NewWithClient(redis.NewClient(opts), ttl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

// NewWithClient wraps an existing redis client
func NewWithClient(rdb *redis.Client, ttl time.Duration) *ReplyCache {
	return &ReplyCache{rdb: rdb, ttl: ttl}
}

// Key derives the cache key of a chat request. The language is kept
// readable; message and context are hashed.
func Key(req domain.ChatRequest) string {
	h := sha256.New()
	h.Write([]byte(req.Message))
	h.Write([]byte{0})
	if req.Context != nil {
		// struct field order makes the encoding stable
		ctxJSON, _ := json.Marshal(req.Context)
		h.Write(ctxJSON)
	}
	return keyPrefix + string(req.Language.Normalize()) + ":" + hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached reply for key, if any
func (c *ReplyCache) Get(ctx context.Context, key string) (string, bool, error) {
	reply, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache: failed to get %s: %w", key, err)
	}
	return reply, true, nil
}

// Set stores a reply under key with the configured TTL
func (c *ReplyCache) Set(ctx context.Context, key, reply string) error {
	if err := c.rdb.Set(ctx, key, reply, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set %s: %w", key, err)
	}
	return nil
}

// Ping checks redis connectivity
func (c *ReplyCache) Ping(ctx context.Context) error {
	if err := c.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("cache: ping failed: %w", err)
	}
	return nil
}

// Close releases the redis connection pool
func (c *ReplyCache) Close() error {
	return c.rdb.Close()
}
