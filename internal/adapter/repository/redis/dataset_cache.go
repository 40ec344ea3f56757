package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DatasetCache implements usecase.Cache using Redis. It stores serialized
// reconciled datasets keyed by credential hash.
type DatasetCache struct {
	client *redis.Client
	prefix string
}

// NewDatasetCache creates a new DatasetCache.
func NewDatasetCache(client *redis.Client) *DatasetCache {
	return &DatasetCache{
		client: client,
		prefix: "dataset:",
	}
}

// Get retrieves a cached dataset. A miss returns (nil, nil).
func (c *DatasetCache) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores a dataset with a freshness TTL.
func (c *DatasetCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.prefix+key, value, ttl).Err()
}

// Delete removes a cached dataset.
func (c *DatasetCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, c.prefix+key).Err()
}
