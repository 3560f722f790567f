package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidTime = New(
		"INVALID_TIME",
		"Departure time is not a valid RFC3339 timestamp",
		http.StatusBadRequest,
	)

	ErrPastTime = New(
		"PAST_TIME",
		"Departure time is in the past",
		http.StatusBadRequest,
	)

	ErrProvider = New(
		"PROVIDER_ERROR",
		"Routing provider request failed",
		http.StatusBadGateway,
	)

	ErrParse = New(
		"PARSE_ERROR",
		"Routing provider response is malformed",
		http.StatusBadGateway,
	)

	ErrFormat = New(
		"FORMAT_ERROR",
		"Routing provider duration is malformed",
		http.StatusBadGateway,
	)

	ErrNoTransitSegment = New(
		"NO_TRANSIT_SEGMENT",
		"No transit segment found in itinerary",
		http.StatusBadGateway,
	)

	ErrCompositionFailed = New(
		"COMPOSITION_FAILED",
		"Multimodal route composition failed",
		http.StatusBadGateway,
	)

	// 418 намеренно: отличимый сигнал "маршрута нет" для клиента
	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route available between origin and destination",
		http.StatusTeapot,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
