package usecase

import (
	"context"
	goerrors "errors"
	"fmt"
	"time"

	"github.com/mobike/routing-api/internal/domain"
	"github.com/mobike/routing-api/internal/domain/repository"
	"github.com/mobike/routing-api/internal/pkg/errors"
	"go.uber.org/zap"
)

// BimodalComposer строит комбинированный маршрут велосипед-транзит-велосипед
type BimodalComposer interface {
	ComposeBimodal(ctx context.Context, origin, destination domain.Coordinate, departAt time.Time) (*domain.Route, error)
}

// Ensure ComposerUseCase implements BimodalComposer interface
var _ BimodalComposer = (*ComposerUseCase)(nil)

// ComposerUseCase - композиция мультимодального маршрута из одномодальных
// ответов провайдера
type ComposerUseCase struct {
	provider repository.RouteProvider
	logger   *zap.Logger
}

// NewComposerUseCase создает новый ComposerUseCase
func NewComposerUseCase(provider repository.RouteProvider, logger *zap.Logger) *ComposerUseCase {
	return &ComposerUseCase{
		provider: provider,
		logger:   logger,
	}
}

// ComposeBimodal строит маршрут "первая миля на велосипеде - транзит -
// последняя миля на велосипеде" четырьмя строго последовательными вызовами
// провайдера: каждый следующий вызов зависит от результата предыдущего,
// распараллелить их внутри одной композиции нельзя.
//
//  1. Разведочный транзитный вызов origin->destination: из него берутся только
//     координаты посадки и высадки, его метрики отбрасываются.
//  2. Велосипед origin->посадка с отправлением departAt.
//  3. Подтверждающий транзитный вызов посадка->высадка, отправление сдвинуто
//     на длительность первой мили; его метрики идут в итог.
//  4. Велосипед высадка->destination, отправление сдвинуто на транзит.
//
// Любая ошибка прерывает композицию целиком: частичный результат не возвращается.
func (uc *ComposerUseCase) ComposeBimodal(
	ctx context.Context,
	origin, destination domain.Coordinate,
	departAt time.Time,
) (*domain.Route, error) {
	discovery, err := uc.provider.FetchRoute(ctx, origin, destination, domain.TravelModeTransit, departAt)
	if err != nil {
		return nil, composeError("transit discovery", err)
	}

	boarding, alighting, err := domain.ExtractTransitEndpoints(discovery)
	if err != nil {
		return nil, composeError("extract transit endpoints", err)
	}

	uc.logger.Debug("Transit endpoints extracted",
		zap.Float64("boarding_lat", boarding.Latitude),
		zap.Float64("boarding_lng", boarding.Longitude),
		zap.Float64("alighting_lat", alighting.Latitude),
		zap.Float64("alighting_lng", alighting.Longitude))

	firstMile, err := uc.provider.FetchRoute(ctx, origin, boarding, domain.TravelModeBicycle, departAt)
	if err != nil {
		return nil, composeError("first mile", err)
	}

	firstMileElapsed, err := domain.ParseDurationSeconds(firstMile.Duration)
	if err != nil {
		return nil, composeError("first mile duration", err)
	}
	transitDepart := domain.Advance(departAt, firstMileElapsed)

	transit, err := uc.provider.FetchRoute(ctx, boarding, alighting, domain.TravelModeTransit, transitDepart)
	if err != nil {
		return nil, composeError("transit confirm", err)
	}

	transitElapsed, err := domain.ParseDurationSeconds(transit.Duration)
	if err != nil {
		return nil, composeError("transit duration", err)
	}
	lastMileDepart := domain.Advance(transitDepart, transitElapsed)

	lastMile, err := uc.provider.FetchRoute(ctx, alighting, destination, domain.TravelModeBicycle, lastMileDepart)
	if err != nil {
		return nil, composeError("last mile", err)
	}

	merged, err := domain.MergeRoutes(firstMile, transit, lastMile)
	if err != nil {
		return nil, composeError("merge", err)
	}

	uc.logger.Debug("Bimodal route composed",
		zap.Int("distance_meters", merged.DistanceMeters),
		zap.String("duration", merged.Duration),
		zap.Int("legs", len(merged.Legs)))

	return merged, nil
}

// composeError оборачивает причину в COMPOSITION_FAILED; доменные ошибки
// предварительно переводятся в коды таксономии сервиса
func composeError(stage string, err error) error {
	switch {
	case goerrors.Is(err, domain.ErrMalformedDuration):
		err = fmt.Errorf("%w: %w", errors.ErrFormat, err)
	case goerrors.Is(err, domain.ErrNoTransitSegment):
		err = fmt.Errorf("%w: %w", errors.ErrNoTransitSegment, err)
	}
	return fmt.Errorf("%w: %s: %w", errors.ErrCompositionFailed, stage, err)
}
