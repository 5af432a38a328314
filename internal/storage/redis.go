package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisSnapshotStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisSnapshotStore(client *redis.Client, prefix string) *RedisSnapshotStore {
	return &RedisSnapshotStore{Client: client, Prefix: prefix}
}

func (s *RedisSnapshotStore) SnapshotKey(key string) string {
	return s.Prefix + key
}

func (s *RedisSnapshotStore) Load(ctx context.Context, key string, v any) (bool, error) {
	payload, err := s.Client.Get(ctx, s.SnapshotKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Client.Set(ctx, s.SnapshotKey(key), payload, 0).Err()
}
