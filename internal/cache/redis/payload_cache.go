package redis

import (
	"context"
	"errors"
	"fmt"
	"time"
	"walletrisk/internal/indexer"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "walletrisk:payload"

// PayloadCache stores each wallet's fetched history as a plain string at
// "walletrisk:payload:{chainID}:{wallet}".
type PayloadCache struct {
	rdb Store
}

func NewPayloadCache(store Store) *PayloadCache {
	return &PayloadCache{rdb: store}
}

func PayloadKey(chainID int, wallet string) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, chainID, wallet)
}

// Get reports a miss with ok false and a nil error.
func (pc *PayloadCache) Get(ctx context.Context, chainID int, wallet string) (string, bool, error) {
	val, err := pc.rdb.Get(ctx, PayloadKey(chainID, wallet)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: get payload %s: %w", wallet, err)
	}
	return val, true, nil
}

// Set stores the payload; a zero ttl keeps it until evicted.
func (pc *PayloadCache) Set(ctx context.Context, chainID int, wallet, payload string, ttl time.Duration) error {
	if err := pc.rdb.Set(ctx, PayloadKey(chainID, wallet), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis: set payload %s: %w", wallet, err)
	}
	return nil
}

var _ indexer.PayloadCache = (*PayloadCache)(nil)
