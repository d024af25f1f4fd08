package repository

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisBlobStore persists blobs as plain Redis string values.  It is the
// STORE_DRIVER=redis alternative for deployments that already run Redis
// and do not want a relational database for two records.
type RedisBlobStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBlobStore returns a store writing keys under the given prefix
// (for namespacing next to the rate limiter keys).  An empty prefix
// defaults to "seating".
func NewRedisBlobStore(rdb *redis.Client, prefix string) *RedisBlobStore {
	if prefix == "" {
		prefix = "seating"
	}
	return &RedisBlobStore{rdb: rdb, prefix: prefix}
}

func (s *RedisBlobStore) fullKey(key string) string { return s.prefix + ":" + key }

// Get loads the blob stored under key; a missing key yields (nil, nil).
func (s *RedisBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.rdb.Get(ctx, s.fullKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the blob under key with no expiry; inventory records are
// permanent.
func (s *RedisBlobStore) Set(ctx context.Context, key string, data []byte) error {
	return s.rdb.Set(ctx, s.fullKey(key), data, 0).Err()
}
