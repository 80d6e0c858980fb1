package cache

import (
	"context"
	"sync"

	"github.com/pharmacy-locator/internal/domain"
)

// MemoryStorage - хранилище без долговременного сохранения (тесты, CACHE_BACKEND=memory)
type MemoryStorage struct {
	mu      sync.Mutex
	entries map[string]domain.GeocodeCacheEntry
	saves   int
}

func NewMemoryStorage(initial map[string]domain.GeocodeCacheEntry) *MemoryStorage {
	return &MemoryStorage{entries: copyEntries(initial)}
}

func (s *MemoryStorage) Name() string {
	return "memory"
}

func (s *MemoryStorage) Load(_ context.Context) (map[string]domain.GeocodeCacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.entries), nil
}

func (s *MemoryStorage) Save(_ context.Context, entries map[string]domain.GeocodeCacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copyEntries(entries)
	s.saves++
	return nil
}

// Saves - сколько раз кеш был сохранён
func (s *MemoryStorage) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Snapshot возвращает копию сохранённого состояния
func (s *MemoryStorage) Snapshot() map[string]domain.GeocodeCacheEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyEntries(s.entries)
}

func copyEntries(src map[string]domain.GeocodeCacheEntry) map[string]domain.GeocodeCacheEntry {
	dst := make(map[string]domain.GeocodeCacheEntry, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
