package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pharmacy-locator/internal/domain"
	"go.uber.org/zap"
)

// FileStorage хранит кеш одним JSON файлом: {"<key>": {"lat", "lon", "meta", "provider"}}
type FileStorage struct {
	path   string
	logger *zap.Logger
}

func NewFileStorage(path string, logger *zap.Logger) *FileStorage {
	return &FileStorage{
		path:   path,
		logger: logger,
	}
}

func (s *FileStorage) Name() string {
	return "file"
}

// fileEntry допускает координаты строкой ("48.85") - так их иногда пишут руками
type fileEntry struct {
	Lat      json.Number            `json:"lat"`
	Lon      json.Number            `json:"lon"`
	Meta     map[string]interface{} `json:"meta"`
	Provider string                 `json:"provider"`
}

func (s *FileStorage) Load(_ context.Context) (map[string]domain.GeocodeCacheEntry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.GeocodeCacheEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCacheCorrupt, err)
	}

	entries := make(map[string]domain.GeocodeCacheEntry, len(raw))
	for key, msg := range raw {
		entry, err := decodeFileEntry(msg)
		if err != nil {
			s.logger.Warn("Skipping malformed cache entry",
				zap.String("key", key),
				zap.Error(err))
			continue
		}
		entries[key] = entry
	}

	return entries, nil
}

func decodeFileEntry(msg json.RawMessage) (domain.GeocodeCacheEntry, error) {
	var fe fileEntry
	if err := json.Unmarshal(msg, &fe); err != nil {
		return domain.GeocodeCacheEntry{}, err
	}

	lat, err := fe.Lat.Float64()
	if err != nil {
		return domain.GeocodeCacheEntry{}, fmt.Errorf("lat: %w", err)
	}
	lon, err := fe.Lon.Float64()
	if err != nil {
		return domain.GeocodeCacheEntry{}, fmt.Errorf("lon: %w", err)
	}

	return domain.GeocodeCacheEntry{
		Lat:      lat,
		Lon:      lon,
		Meta:     fe.Meta,
		Provider: fe.Provider,
	}, nil
}

// Save пишет во временный файл рядом и атомарно переименовывает его в файл кеша
func (s *FileStorage) Save(_ context.Context, entries map[string]domain.GeocodeCacheEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp cache file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp cache file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp cache file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp cache file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
