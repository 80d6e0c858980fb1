package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
	"go.uber.org/zap"
)

// GeocodeCache - кеш геокодирования в памяти с синхронным сохранением в storage.
// Все операции сериализованы мьютексом процесса; между процессами координации нет.
type GeocodeCache struct {
	mu      sync.RWMutex
	entries map[string]domain.GeocodeCacheEntry
	storage repository.GeocodeCacheStorage
	logger  *zap.Logger
}

var _ repository.GeocodeCacheRepository = (*GeocodeCache)(nil)

func NewGeocodeCache(storage repository.GeocodeCacheStorage, logger *zap.Logger) *GeocodeCache {
	return &GeocodeCache{
		entries: make(map[string]domain.GeocodeCacheEntry),
		storage: storage,
		logger:  logger,
	}
}

// Load читает кеш из storage целиком. Ошибка чтения не фатальна:
// кеш остаётся пустым, сервис продолжает работать.
func (c *GeocodeCache) Load(ctx context.Context) {
	entries, err := c.storage.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.logger.Warn("Failed to load geocode cache, starting empty",
			zap.String("backend", c.storage.Name()),
			zap.Error(err))
		c.entries = make(map[string]domain.GeocodeCacheEntry)
		return
	}

	// Хранилище может вернуть nil map без ошибки (например, msgpack nil в redis)
	if entries == nil {
		entries = make(map[string]domain.GeocodeCacheEntry)
	}

	c.entries = entries
	c.logger.Info("Geocode cache loaded",
		zap.String("backend", c.storage.Name()),
		zap.Int("entries", len(entries)))
}

func (c *GeocodeCache) Get(key string) (domain.GeocodeCacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if ok {
		c.logger.Debug("Cache hit", zap.String("key", key))
	}
	return entry, ok
}

// Put перезаписывает запись и сохраняет кеш; put+persist атомарны относительно друг друга.
// При ошибке сохранения запись остаётся в памяти.
func (c *GeocodeCache) Put(ctx context.Context, key string, entry domain.GeocodeCacheEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry
	c.logger.Debug("Cache set", zap.String("key", key))

	return c.persistLocked(ctx)
}

// Persist синхронно сохраняет весь кеш
func (c *GeocodeCache) Persist(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistLocked(ctx)
}

func (c *GeocodeCache) persistLocked(ctx context.Context) error {
	if err := c.storage.Save(ctx, c.entries); err != nil {
		return fmt.Errorf("persist geocode cache (%s): %w", c.storage.Name(), err)
	}
	return nil
}

func (c *GeocodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
