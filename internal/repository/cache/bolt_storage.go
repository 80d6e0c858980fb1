package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var geocodeBucket = []byte("geocode")

// BoltStorage хранит кеш в bbolt: одна запись на ключ, значение в msgpack
type BoltStorage struct {
	db     *bbolt.DB
	logger *zap.Logger
}

func NewBoltStorage(path string, logger *zap.Logger) (*BoltStorage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt cache %s: %w", path, err)
	}

	logger.Info("Bolt cache opened", zap.String("path", path))

	return &BoltStorage{
		db:     db,
		logger: logger,
	}, nil
}

func (s *BoltStorage) Name() string {
	return "bolt"
}

func (s *BoltStorage) Close() error {
	return s.db.Close()
}

func (s *BoltStorage) Load(_ context.Context) (map[string]domain.GeocodeCacheEntry, error) {
	entries := make(map[string]domain.GeocodeCacheEntry)

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(geocodeBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var entry domain.GeocodeCacheEntry
			if err := msgpack.Unmarshal(v, &entry); err != nil {
				s.logger.Warn("Skipping malformed cache entry",
					zap.ByteString("key", k),
					zap.Error(err))
				return nil
			}
			entries[string(k)] = entry
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}

	return entries, nil
}

// Save перезаписывает bucket целиком в одной транзакции
func (s *BoltStorage) Save(_ context.Context, entries map[string]domain.GeocodeCacheEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(geocodeBucket) != nil {
			if err := tx.DeleteBucket(geocodeBucket); err != nil {
				return fmt.Errorf("reset bucket: %w", err)
			}
		}
		b, err := tx.CreateBucket(geocodeBucket)
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		for key, entry := range entries {
			data, err := msgpack.Marshal(entry)
			if err != nil {
				return fmt.Errorf("marshal entry %q: %w", key, err)
			}
			if err := b.Put([]byte(key), data); err != nil {
				return fmt.Errorf("put entry %q: %w", key, err)
			}
		}
		return nil
	})
}
