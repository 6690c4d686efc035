package eligibility

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const verdictKeyPrefix = "bloodcamp:verdict:"

// RedisVerdictCache keeps donor verdict snapshots in redis under a TTL.
type RedisVerdictCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisVerdictCache(client *redis.Client, ttl time.Duration) *RedisVerdictCache {
	return &RedisVerdictCache{client: client, ttl: ttl}
}

func (c *RedisVerdictCache) Get(ctx context.Context, donorID string) (*Snapshot, bool, error) {
	raw, err := c.client.Get(ctx, verdictKeyPrefix+donorID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, fmt.Errorf("decode cached verdict: %w", err)
	}
	return &snap, true, nil
}

func (c *RedisVerdictCache) Set(ctx context.Context, donorID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, verdictKeyPrefix+donorID, raw, c.ttl).Err()
}

// Fill stores snap only when the donor has no cached entry.
func (c *RedisVerdictCache) Fill(ctx context.Context, donorID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.client.SetNX(ctx, verdictKeyPrefix+donorID, raw, c.ttl).Err()
}

func (c *RedisVerdictCache) Invalidate(ctx context.Context, donorID string) error {
	return c.client.Del(ctx, verdictKeyPrefix+donorID).Err()
}
