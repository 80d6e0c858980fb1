package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// RedisStorage хранит весь кеш геокодирования одним msgpack значением под одним ключом
type RedisStorage struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisStorage(r *Redis, key string) *RedisStorage {
	return &RedisStorage{
		client: r.Client(),
		key:    key,
		logger: r.logger,
	}
}

func (s *RedisStorage) Name() string {
	return "redis"
}

func (s *RedisStorage) Load(ctx context.Context) (map[string]domain.GeocodeCacheEntry, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return map[string]domain.GeocodeCacheEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	entries := make(map[string]domain.GeocodeCacheEntry)
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}

	s.logger.Debug("Geocode cache loaded from redis",
		zap.String("key", s.key),
		zap.Int("entries", len(entries)))
	return entries, nil
}

func (s *RedisStorage) Save(ctx context.Context, entries map[string]domain.GeocodeCacheEntry) error {
	data, err := msgpack.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("cache set error: %w", err)
	}
	return nil
}
