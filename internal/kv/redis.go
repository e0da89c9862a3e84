package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	Namespace string
}

// RedisStore keeps each key as a namespaced Redis string. Selected when
// REDIS_ADDR is configured.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = "talentflow"
	}
	return &RedisStore{client: client, namespace: namespace}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	raw, err := s.client.Get(ctx, s.namespaced(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return json.RawMessage(raw), nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if err := s.client.Set(ctx, s.namespaced(key), []byte(value), 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.namespace+":*", 256).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *RedisStore) namespaced(key string) string {
	return s.namespace + ":" + key
}
