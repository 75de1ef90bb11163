package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	categoryIDSeqKey = "storefront:category:id:seq"
	categoryIDMapKey = "storefront:category:id:map"
)

// RedisのINCRシーケンス+HSETNXでidを採番するslug→idストア。
type CategoryIDRedisStore struct {
	client *redis.Client
}

// DI
func NewCategoryIDRedisStore(client *redis.Client) *CategoryIDRedisStore {
	return &CategoryIDRedisStore{client: client}
}

func (s *CategoryIDRedisStore) IDFor(ctx context.Context, slug string) (int64, error) {
	id, err := s.client.HGet(ctx, categoryIDMapKey, slug).Int64()
	if err == nil {
		return id, nil
	}
	if err != redis.Nil {
		return 0, fmt.Errorf("category id lookup: %w", err)
	}

	candidate, err := s.client.Incr(ctx, categoryIDSeqKey).Result()
	if err != nil {
		return 0, fmt.Errorf("category id sequence: %w", err)
	}

	// 並行採番で負けたら既存の値を読み直す（シーケンスの欠番は許容）
	set, err := s.client.HSetNX(ctx, categoryIDMapKey, slug, candidate).Result()
	if err != nil {
		return 0, fmt.Errorf("category id assign: %w", err)
	}
	if set {
		return candidate, nil
	}
	return s.client.HGet(ctx, categoryIDMapKey, slug).Int64()
}
