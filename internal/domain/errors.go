package domain

import "errors"

var (
	// ErrGeocodeNotFound - ни один провайдер не нашёл локацию
	ErrGeocodeNotFound = errors.New("geocode: location not found")

	// ErrNoMatch - провайдер ответил успешно, но без результатов
	ErrNoMatch = errors.New("geocode: provider returned no match")

	// ErrProviderUnavailable - транспортная/HTTP ошибка или таймаут внешнего сервиса
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrCacheCorrupt - сохранённый кеш не читается
	ErrCacheCorrupt = errors.New("geocode cache corrupt")

	// ErrMalformedElement - элемент Overpass без пригодных координат
	ErrMalformedElement = errors.New("overpass element has no usable coordinates")
)
