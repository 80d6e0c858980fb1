package repository

import (
	"context"

	"github.com/pharmacy-locator/internal/domain"
)

// GeocodeProvider - внешний сервис геокодирования (Nominatim, Photon, ...)
type GeocodeProvider interface {
	// Name - название провайдера
	Name() string

	// Geocode возвращает лучший результат для текста.
	// domain.ErrNoMatch если результатов нет, domain.ErrProviderUnavailable при сбое.
	Geocode(ctx context.Context, query string) (*domain.GeocodeResult, error)
}
