package repository

import (
	"context"

	"github.com/pharmacy-locator/internal/domain"
)

// GeocodeCacheRepository определяет методы для работы с кешем геокодирования
type GeocodeCacheRepository interface {
	// Get получает запись по нормализованному ключу
	Get(key string) (domain.GeocodeCacheEntry, bool)

	// Put сохраняет запись и синхронно сбрасывает кеш в хранилище
	Put(ctx context.Context, key string, entry domain.GeocodeCacheEntry) error
}

// GeocodeCacheStorage - долговременное хранилище всего кеша целиком
type GeocodeCacheStorage interface {
	// Load читает весь кеш
	Load(ctx context.Context) (map[string]domain.GeocodeCacheEntry, error)

	// Save перезаписывает весь кеш
	Save(ctx context.Context, entries map[string]domain.GeocodeCacheEntry) error

	// Name - название бэкенда для логов
	Name() string
}
