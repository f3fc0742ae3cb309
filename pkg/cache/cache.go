// Package cache is the explicit, tag-based list cache. List responses
// are stored under a key registered to an entity tag; any successful
// mutation of that entity invalidates the whole tag. Coarse by design:
// a single product update drops every cached product listing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTTL = 5 * time.Minute

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to redis and verifies the connection. Callers may run
// without a cache entirely; a nil *Store is valid and all methods
// degrade to misses.
func New(ctx context.Context, addr string) (*Store, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: ping: %w", err)
	}
	return &Store{rdb: client, ttl: defaultTTL}, nil
}

// NewWithClient wraps an existing client (used by tests with miniredis).
func NewWithClient(client *redis.Client) *Store {
	return &Store{rdb: client, ttl: defaultTTL}
}

func tagSetKey(tag string) string {
	return "tag:" + tag
}

// Get loads a cached value into dest, reporting whether it was present.
func (s *Store) Get(ctx context.Context, key string, dest interface{}) bool {
	if s == nil || s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// Set stores a value under key and registers the key with each tag so
// Invalidate can find it later. Failures are swallowed: the cache is
// an optimization, never a source of truth.
func (s *Store) Set(ctx context.Context, key string, value interface{}, tags ...string) {
	if s == nil || s.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, key, raw, s.ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagSetKey(tag), key)
		pipe.Expire(ctx, tagSetKey(tag), s.ttl)
	}
	_, _ = pipe.Exec(ctx)
}

// Invalidate drops every key registered under the given tags.
func (s *Store) Invalidate(ctx context.Context, tags ...string) {
	if s == nil || s.rdb == nil {
		return
	}
	for _, tag := range tags {
		keys, err := s.rdb.SMembers(ctx, tagSetKey(tag)).Result()
		if err != nil {
			continue
		}
		if len(keys) > 0 {
			s.rdb.Del(ctx, keys...)
		}
		s.rdb.Del(ctx, tagSetKey(tag))
	}
}

// ListKey builds a deterministic cache key for a paginated listing.
func ListKey(tag string, page, limit int, search, sortBy, sortOrder string) string {
	return fmt.Sprintf("%s:list:p%d:l%d:q%s:s%s:%s", tag, page, limit, search, sortBy, sortOrder)
}
