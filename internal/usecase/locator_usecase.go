package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pharmacy-locator/internal/domain"
	pkgerrors "github.com/pharmacy-locator/internal/pkg/errors"
	"github.com/pharmacy-locator/internal/usecase/dto"
)

// SearchProvider - название движка поиска, отдаётся в envelope
const SearchProvider = "overpass"

// GeocodeResolver - текст локации -> координата
type GeocodeResolver interface {
	Resolve(ctx context.Context, location string) (*domain.GeocodeResult, error)
}

// PharmacySearcher - поиск объектов в радиусе от координаты
type PharmacySearcher interface {
	Search(ctx context.Context, center domain.Coordinate, radiusM, limit int) []domain.Pharmacy
}

// LocatorUseCase - геокодирование + поиск аптек в одном запросе
type LocatorUseCase struct {
	geocoder      GeocodeResolver
	searcher      PharmacySearcher
	defaultRadius int
	defaultLimit  int
	logger        *zap.Logger
}

// NewLocatorUseCase - создание нового LocatorUseCase
func NewLocatorUseCase(
	geocoder GeocodeResolver,
	searcher PharmacySearcher,
	defaultRadius int,
	defaultLimit int,
	logger *zap.Logger,
) *LocatorUseCase {
	return &LocatorUseCase{
		geocoder:      geocoder,
		searcher:      searcher,
		defaultRadius: defaultRadius,
		defaultLimit:  defaultLimit,
		logger:        logger,
	}
}

// Locate возвращает envelope: "error" если локация не найдена, иначе "ok" с результатами.
// Ошибки не возвращаются - любой исход упакован в envelope.
func (uc *LocatorUseCase) Locate(
	ctx context.Context,
	situation string,
	location string,
	radiusM int,
	limit int,
) *dto.LocatorResponse {
	// Установка значений по умолчанию
	if radiusM <= 0 {
		radiusM = uc.defaultRadius
	}
	if limit <= 0 {
		limit = uc.defaultLimit
	}

	geo, err := uc.geocoder.Resolve(ctx, location)
	if err != nil {
		if !errors.Is(err, domain.ErrGeocodeNotFound) {
			uc.logger.Error("Unexpected geocoder error", zap.Error(err))
		}
		return dto.NewErrorResponse(pkgerrors.ErrLocationNotGeocoded.Message)
	}

	pharmacies := uc.searcher.Search(ctx, geo.Coordinate, radiusM, limit)

	uc.logger.Info("Locate completed",
		zap.String("location", location),
		zap.Bool("geocode_cached", geo.Cached),
		zap.Int("radius_m", radiusM),
		zap.Int("limit", limit),
		zap.Int("results", len(pharmacies)))

	results := make([]dto.PharmacyResult, 0, len(pharmacies))
	for _, p := range pharmacies {
		results = append(results, dto.NewPharmacyResult(p))
	}

	return &dto.LocatorResponse{
		Status:   dto.StatusOK,
		Provider: SearchProvider,
		QueryLocation: &dto.QueryLocation{
			Input:      location,
			Lat:        geo.Coordinate.Lat,
			Lon:        geo.Coordinate.Lon,
			RawGeocode: geo.Meta,
			Geocoder:   geo.Provider,
			Cached:     geo.Cached,
		},
		Situation: situation,
		Results:   results,
	}
}
