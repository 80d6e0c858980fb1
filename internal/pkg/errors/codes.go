package errors

import "net/http"

var (
	ErrLocationNotGeocoded = New(
		"LOCATION_NOT_GEOCODED",
		"Could not geocode location",
		http.StatusNotFound,
	)

	ErrLocationRequired = New(
		"LOCATION_REQUIRED",
		"No location provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
