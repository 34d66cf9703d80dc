// Package cache provides a Redis-backed read-through cache for live
// directory payloads. Entries expire after 24 hours; a miss and a
// decode failure both surface as nil so callers fall back to the
// network.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/obxstays/obx-backend/internal/model"
)

const defaultTTL = 24 * time.Hour

// Cache wraps a Redis client with typed get/set for place and review
// lists. It satisfies directory.ContentCache.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 24-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, ttl: defaultTTL}
}

// GetPlaces retrieves a cached place list.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetPlaces(ctx context.Context, key string) ([]model.Place, error) {
	var places []model.Place
	ok, err := c.get(ctx, key, &places)
	if err != nil || !ok {
		return nil, err
	}
	return places, nil
}

// SetPlaces stores a place list with the configured TTL.
func (c *Cache) SetPlaces(ctx context.Context, key string, places []model.Place) error {
	if len(places) == 0 {
		return nil
	}
	return c.set(ctx, key, places)
}

// GetReviews retrieves a cached review list.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetReviews(ctx context.Context, key string) ([]model.Review, error) {
	var reviews []model.Review
	ok, err := c.get(ctx, key, &reviews)
	if err != nil || !ok {
		return nil, err
	}
	return reviews, nil
}

// SetReviews stores a review list with the configured TTL.
func (c *Cache) SetReviews(ctx context.Context, key string, reviews []model.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	return c.set(ctx, key, reviews)
}

// Delete removes the cached entry for the given key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("cache delete for key %s: %w", key, err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("cache get for key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dst); err != nil {
		return false, fmt.Errorf("unmarshaling cached entry for key %s: %w", key, err)
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, val any) error {
	b, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshaling cache entry for key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for key %s: %w", key, err)
	}
	return nil
}
