// Copyright (c) 2026 Payvel. All rights reserved.
// Author: eng@payvel.app

package assignor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/payvel/payvel/internal/platform/constants"
)

// cacheTTL bounds how stale a cached assignor may get if an invalidation
// is lost (e.g. a Redis hiccup between update and delete).
const cacheTTL = 10 * time.Minute

// RedisCache implements [Cache] as a JSON read-through cache keyed by
// assignor ID. Only the client-safe DTO is ever stored, never the entity
// with its password hash.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates the Redis-backed assignor cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

/*
Get retrieves a cached assignor DTO by ID.

Description: A cache miss is reported as (nil, nil) so the caller falls
through to the primary store without treating the miss as a failure.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *DTO: The cached value, or nil on a miss
  - error: Connectivity or decoding failures
*/
func (cache *RedisCache) Get(context context.Context, id string) (*DTO, error) {

	// Build the namespaced cache key
	key := constants.RedisPrefixAssignor + id

	// Fetch the raw JSON payload
	payload, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_assignor_get_failed: %w", err)
	}

	// Decode the stored DTO
	var dto DTO
	if err := json.Unmarshal(payload, &dto); err != nil {
		return nil, fmt.Errorf("redis_assignor_decode_failed: %w", err)
	}

	return &dto, nil
}

/*
Set stores an assignor DTO under its ID with the standard cache TTL.

Parameters:
  - context: context.Context
  - dto: DTO

Returns:
  - error: Encoding or storage failures
*/
func (cache *RedisCache) Set(context context.Context, dto DTO) error {

	// Encode the DTO as JSON
	payload, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("redis_assignor_encode_failed: %w", err)
	}

	// Build the namespaced cache key
	key := constants.RedisPrefixAssignor + dto.ID

	// Store with TTL
	if err := cache.client.Set(context, key, payload, cacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_assignor_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate removes the cached entry for an assignor ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Deletion failures
*/
func (cache *RedisCache) Invalidate(context context.Context, id string) error {

	// Build the namespaced cache key
	key := constants.RedisPrefixAssignor + id

	// Delete the entry; a missing key is not an error
	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_assignor_invalidate_failed: %w", err)
	}

	return nil
}
