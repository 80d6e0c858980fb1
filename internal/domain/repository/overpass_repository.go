package repository

import (
	"context"

	"github.com/pharmacy-locator/internal/domain"
)

// OverpassRepository определяет методы для работы с Overpass API
type OverpassRepository interface {
	// FindAmenities возвращает элементы amenity=<Amenity> в радиусе от центра
	FindAmenities(ctx context.Context, q domain.AmenityQuery) ([]domain.OverpassElement, error)
}
