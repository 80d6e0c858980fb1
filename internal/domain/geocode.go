package domain

import (
	"strings"
)

// GeocodeResult - результат геокодирования текстовой локации
type GeocodeResult struct {
	Coordinate Coordinate
	// Meta - сырой ответ провайдера (Nominatim item / Photon properties)
	Meta     map[string]interface{}
	Provider string
	// Cached - результат взят из кеша без сетевых запросов
	Cached bool
}

// GeocodeCacheEntry - запись кеша геокодирования
type GeocodeCacheEntry struct {
	Lat      float64                `json:"lat" msgpack:"lat"`
	Lon      float64                `json:"lon" msgpack:"lon"`
	Meta     map[string]interface{} `json:"meta" msgpack:"meta"`
	Provider string                 `json:"provider,omitempty" msgpack:"provider,omitempty"`
}

// Coordinate возвращает координату записи
func (e GeocodeCacheEntry) Coordinate() Coordinate {
	return Coordinate{Lat: e.Lat, Lon: e.Lon}
}

// Valid - запись с координатами вне диапазона считается битой
func (e GeocodeCacheEntry) Valid() bool {
	return e.Coordinate().Valid()
}

// NormalizeLocation - ключ кеша: обрезанный текст в нижнем регистре
func NormalizeLocation(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
