// Package bootstrap собирает зависимости локатора для HTTP сервера и CLI
package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/domain/repository"
	"github.com/pharmacy-locator/internal/infrastructure/nominatim"
	"github.com/pharmacy-locator/internal/infrastructure/overpass"
	"github.com/pharmacy-locator/internal/infrastructure/photon"
	"github.com/pharmacy-locator/internal/repository/cache"
	"github.com/pharmacy-locator/internal/usecase"
)

// App - собранный граф зависимостей
type App struct {
	Cache    *cache.GeocodeCache
	Geocoder *usecase.Geocoder
	Search   *usecase.PharmacySearchUseCase
	Locator  *usecase.LocatorUseCase

	// HealthChecks - проверки внешних хранилищ для /health
	HealthChecks map[string]func(ctx context.Context) error

	closers []func() error
	logger  *zap.Logger
}

// New создаёт хранилище кеша, загружает кеш и инициализирует провайдеры и use cases.
// Недоступное хранилище (bolt/redis) заменяется памятью: сервис работает без персистентности.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *App {
	app := &App{
		HealthChecks: make(map[string]func(ctx context.Context) error),
		logger:       logger,
	}

	storage := app.newStorage(cfg, logger)
	geocodeCache := cache.NewGeocodeCache(storage, logger)
	geocodeCache.Load(ctx)

	providers := []repository.GeocodeProvider{
		nominatim.NewNominatimClient(&cfg.Nominatim, cfg.Client, logger),
		photon.NewPhotonClient(&cfg.Photon, cfg.Client, logger),
	}
	overpassRepo := overpass.NewOverpassClient(&cfg.Overpass, cfg.Client, logger)

	app.Cache = geocodeCache
	app.Geocoder = usecase.NewGeocoder(geocodeCache, logger, providers...)
	app.Search = usecase.NewPharmacySearchUseCase(overpassRepo, cfg.Search.Amenity, logger)
	app.Locator = usecase.NewLocatorUseCase(
		app.Geocoder,
		app.Search,
		cfg.Search.DefaultRadius,
		cfg.Search.DefaultLimit,
		logger,
	)

	logger.Info("Locator initialized",
		zap.String("cache_backend", storage.Name()),
		zap.Int("cache_entries", geocodeCache.Len()),
		zap.String("amenity", cfg.Search.Amenity))

	return app
}

func (a *App) newStorage(cfg *config.Config, logger *zap.Logger) repository.GeocodeCacheStorage {
	switch cfg.Cache.Backend {
	case config.CacheBackendFile:
		return cache.NewFileStorage(cfg.Cache.FilePath, logger)

	case config.CacheBackendBolt:
		s, err := cache.NewBoltStorage(cfg.Cache.BoltPath, logger)
		if err != nil {
			logger.Warn("Bolt cache unavailable, using memory", zap.Error(err))
			return cache.NewMemoryStorage(nil)
		}
		a.closers = append(a.closers, s.Close)
		return s

	case config.CacheBackendRedis:
		r, err := cache.NewRedis(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis cache unavailable, using memory", zap.Error(err))
			return cache.NewMemoryStorage(nil)
		}
		a.closers = append(a.closers, r.Close)
		a.HealthChecks["redis"] = r.Health
		return cache.NewRedisStorage(r, cfg.Cache.RedisKey)

	case config.CacheBackendMemory:
		return cache.NewMemoryStorage(nil)

	default:
		logger.Warn("Unknown cache backend, using memory", zap.String("backend", cfg.Cache.Backend))
		return cache.NewMemoryStorage(nil)
	}
}

// Close освобождает хранилище кеша
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		a.logger.Error("Failed to release resources", zap.Error(errors.Join(errs...)))
	}
	return errors.Join(errs...)
}
