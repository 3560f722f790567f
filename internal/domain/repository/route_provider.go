package repository

import (
	"context"
	"time"

	"github.com/mobike/routing-api/internal/domain"
)

// RouteProvider - интерфейс для получения одномодального маршрута
// от внешнего провайдера
type RouteProvider interface {
	// FetchRoute запрашивает маршрут между двумя точками в одном режиме
	// передвижения с заданным временем отправления
	FetchRoute(
		ctx context.Context,
		origin domain.Coordinate,
		destination domain.Coordinate,
		mode domain.TravelMode,
		departureTime time.Time,
	) (*domain.Route, error)
}
