package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранит кэш в Redis, значения сериализуются в JSON.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore подключается к Redis по адресу addr.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis: не удалось подключиться к %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

func (rs *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	val, err := rs.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, nil
	}
	return true, nil
}

func (rs *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, key, data, ttl).Err()
}

// DeleteContaining удаляет ключи, имя которых содержит любую из подстрок.
// Обход через SCAN, чтобы не блокировать Redis на больших базах.
func (rs *RedisStore) DeleteContaining(ctx context.Context, substrings ...string) error {
	iter := rs.client.Scan(ctx, 0, "*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		for _, sub := range substrings {
			if strings.Contains(key, sub) {
				if err := rs.client.Del(ctx, key).Err(); err != nil {
					return err
				}
				break
			}
		}
	}
	return iter.Err()
}

// Close закрывает подключение к Redis.
func (rs *RedisStore) Close() error {
	return rs.client.Close()
}
