package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancehub/job-board/internal/api/metrics"
	"github.com/freelancehub/job-board/internal/core/domain"
)

const (
	listingKey = "jobs:listing"
	listingTTL = 30 * time.Second
)

// ListingCache caches the fully expanded job listing as a JSON blob with a
// short TTL. Job creation invalidates it.
type ListingCache struct {
	client *redis.Client
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

// Get returns the cached listing, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context) ([]*domain.Job, error) {
	raw, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}

	var jobs []*domain.Job
	if err := json.Unmarshal(raw, &jobs); err != nil {
		return nil, fmt.Errorf("listing cache decode: %w", err)
	}
	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return jobs, nil
}

// Set stores the listing with the cache TTL.
func (c *ListingCache) Set(ctx context.Context, jobs []*domain.Job) error {
	raw, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("listing cache encode: %w", err)
	}
	return c.client.Set(ctx, listingKey, raw, listingTTL).Err()
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
