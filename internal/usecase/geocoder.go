package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/pharmacy-locator/internal/domain"
	"github.com/pharmacy-locator/internal/domain/repository"
)

// Geocoder - геокодирование текста: кеш -> провайдеры по порядку до первого успеха
type Geocoder struct {
	providers []repository.GeocodeProvider
	cache     repository.GeocodeCacheRepository
	group     singleflight.Group
	logger    *zap.Logger
}

// NewGeocoder - создание Geocoder; порядок providers задаёт порядок fallback
func NewGeocoder(
	cache repository.GeocodeCacheRepository,
	logger *zap.Logger,
	providers ...repository.GeocodeProvider,
) *Geocoder {
	return &Geocoder{
		providers: providers,
		cache:     cache,
		logger:    logger,
	}
}

// Resolve возвращает координату для текста локации.
// domain.ErrGeocodeNotFound - пустой ввод или ни один провайдер ничего не нашёл;
// ошибка ctx - клиент перестал ждать.
func (g *Geocoder) Resolve(ctx context.Context, location string) (*domain.GeocodeResult, error) {
	key := domain.NormalizeLocation(location)
	if key == "" {
		return nil, domain.ErrGeocodeNotFound
	}

	if res, ok := g.fromCache(key); ok {
		return res, nil
	}

	// Одновременные запросы одной и той же локации идут в сеть один раз.
	// Общий вызов не зависит от отмены первого клиента, каждый ждёт со своим ctx.
	ch := g.group.DoChan(key, func() (interface{}, error) {
		if res, ok := g.fromCache(key); ok {
			return res, nil
		}
		return g.resolveRemote(context.WithoutCancel(ctx), key, location)
	})

	var r singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r = <-ch:
	}
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Shared {
		g.logger.Debug("Geocode result shared between concurrent requests", zap.String("key", key))
	}

	return r.Val.(*domain.GeocodeResult), nil
}

func (g *Geocoder) fromCache(key string) (*domain.GeocodeResult, bool) {
	entry, ok := g.cache.Get(key)
	if !ok {
		return nil, false
	}

	// Битая запись - промах, а не ошибка
	if !entry.Valid() {
		g.logger.Warn("Ignoring malformed geocode cache entry",
			zap.String("key", key),
			zap.Float64("lat", entry.Lat),
			zap.Float64("lon", entry.Lon))
		return nil, false
	}

	meta := entry.Meta
	if meta == nil {
		meta = map[string]interface{}{}
	}

	return &domain.GeocodeResult{
		Coordinate: entry.Coordinate(),
		Meta:       meta,
		Provider:   entry.Provider,
		Cached:     true,
	}, true
}

func (g *Geocoder) resolveRemote(ctx context.Context, key, location string) (*domain.GeocodeResult, error) {
	for _, p := range g.providers {
		// Провайдеру уходит исходный текст, не нормализованный ключ
		res, err := p.Geocode(ctx, location)
		if err != nil {
			if errors.Is(err, domain.ErrNoMatch) {
				g.logger.Info("Geocode provider returned no match",
					zap.String("provider", p.Name()),
					zap.String("location", location))
			} else {
				g.logger.Warn("Geocode provider failed, falling through",
					zap.String("provider", p.Name()),
					zap.String("location", location),
					zap.Error(err))
			}
			continue
		}

		if !res.Coordinate.Valid() {
			g.logger.Warn("Geocode provider returned invalid coordinate",
				zap.String("provider", p.Name()),
				zap.Float64("lat", res.Coordinate.Lat),
				zap.Float64("lon", res.Coordinate.Lon))
			continue
		}

		entry := domain.GeocodeCacheEntry{
			Lat:      res.Coordinate.Lat,
			Lon:      res.Coordinate.Lon,
			Meta:     res.Meta,
			Provider: res.Provider,
		}
		if err := g.cache.Put(ctx, key, entry); err != nil {
			g.logger.Warn("Failed to persist geocode cache", zap.String("key", key), zap.Error(err))
		}

		g.logger.Info("Location geocoded",
			zap.String("provider", p.Name()),
			zap.String("key", key),
			zap.Float64("lat", res.Coordinate.Lat),
			zap.Float64("lon", res.Coordinate.Lon))

		return res, nil
	}

	return nil, domain.ErrGeocodeNotFound
}
