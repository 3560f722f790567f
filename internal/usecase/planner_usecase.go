package usecase

import (
	"context"
	"time"

	"github.com/mobike/routing-api/internal/domain"
	"github.com/mobike/routing-api/internal/domain/repository"
	"github.com/mobike/routing-api/internal/pkg/errors"
	"github.com/mobike/routing-api/internal/pkg/utils"
	"github.com/mobike/routing-api/internal/usecase/dto"
	"go.uber.org/zap"
)

// PastTimeGrace - насколько в прошлом может быть запрошенное время отправления
const PastTimeGrace = time.Minute

// RouteSelector выбирает лучший из доступных маршрутов для запроса
type RouteSelector interface {
	SelectBestRoute(ctx context.Context, req dto.RoutingRequest) (*dto.RoutingResponse, error)
}

// Ensure PlannerUseCase implements RouteSelector interface
var _ RouteSelector = (*PlannerUseCase)(nil)

// PlannerUseCase - верхнеуровневая операция: запускает мультимодальную
// композицию и прямой велосипедный маршрут, возвращает более быстрый
type PlannerUseCase struct {
	composer BimodalComposer
	provider repository.RouteProvider
	logger   *zap.Logger
}

// NewPlannerUseCase создает новый PlannerUseCase
func NewPlannerUseCase(
	composer BimodalComposer,
	provider repository.RouteProvider,
	logger *zap.Logger,
) *PlannerUseCase {
	return &PlannerUseCase{
		composer: composer,
		provider: provider,
		logger:   logger,
	}
}

// SelectBestRoute валидирует запрос и запускает обе стратегии параллельно.
// Отказ одной стратегии не прерывает другую: запрос падает только когда
// не сработали обе. При равной длительности побеждает мультимодальный маршрут.
func (uc *PlannerUseCase) SelectBestRoute(
	ctx context.Context,
	req dto.RoutingRequest,
) (*dto.RoutingResponse, error) {
	// Validate request: endpoints must be present and in range
	if req.Origin == nil || req.Destination == nil {
		return nil, errors.ErrInvalidRequest
	}
	if !utils.ValidateCoordinates(req.Origin.Latitude, req.Origin.Longitude) ||
		!utils.ValidateCoordinates(req.Destination.Latitude, req.Destination.Longitude) {
		return nil, errors.ErrInvalidCoordinates
	}

	// "Сейчас" фиксируется один раз на входе и прокидывается дальше
	now := time.Now().UTC()
	departAt := now
	if req.DepartureTime != "" {
		parsed, err := time.Parse(time.RFC3339, req.DepartureTime)
		if err != nil {
			return nil, errors.ErrInvalidTime
		}
		if parsed.Before(now.Add(-PastTimeGrace)) {
			return nil, errors.ErrPastTime
		}
		departAt = parsed.UTC()
	}

	origin := domain.Coordinate{Latitude: req.Origin.Latitude, Longitude: req.Origin.Longitude}
	destination := domain.Coordinate{Latitude: req.Destination.Latitude, Longitude: req.Destination.Longitude}

	type strategyResult struct {
		strategy dto.Strategy
		route    *domain.Route
		err      error
	}

	// Стратегии независимы: общее состояние между ними отсутствует
	resultsChan := make(chan strategyResult, 2)

	go func() {
		route, err := uc.composer.ComposeBimodal(ctx, origin, destination, departAt)
		resultsChan <- strategyResult{strategy: dto.StrategyBimodal, route: route, err: err}
	}()

	go func() {
		route, err := uc.provider.FetchRoute(ctx, origin, destination, domain.TravelModeBicycle, departAt)
		resultsChan <- strategyResult{strategy: dto.StrategyCycling, route: route, err: err}
	}()

	var bimodal, cycling *domain.Route
	for i := 0; i < 2; i++ {
		res := <-resultsChan
		if res.err != nil {
			// Отказ стратегии деградирует до "нет результата", не прерывая запрос
			uc.logger.Warn("Routing strategy failed",
				zap.String("strategy", string(res.strategy)),
				zap.Error(res.err))
			continue
		}
		switch res.strategy {
		case dto.StrategyBimodal:
			bimodal = res.route
		case dto.StrategyCycling:
			cycling = res.route
		}
	}
	close(resultsChan)

	return uc.pickFaster(bimodal, cycling)
}

func (uc *PlannerUseCase) pickFaster(bimodal, cycling *domain.Route) (*dto.RoutingResponse, error) {
	if bimodal == nil && cycling == nil {
		return nil, errors.ErrNoRouteFound
	}
	if bimodal == nil {
		return &dto.RoutingResponse{Strategy: dto.StrategyCycling, Route: cycling}, nil
	}
	if cycling == nil {
		return &dto.RoutingResponse{Strategy: dto.StrategyBimodal, Route: bimodal}, nil
	}

	bimodalSeconds, err := domain.ParseDurationSeconds(bimodal.Duration)
	if err != nil {
		uc.logger.Warn("Bimodal route has malformed duration", zap.Error(err))
		return &dto.RoutingResponse{Strategy: dto.StrategyCycling, Route: cycling}, nil
	}
	cyclingSeconds, err := domain.ParseDurationSeconds(cycling.Duration)
	if err != nil {
		uc.logger.Warn("Cycling route has malformed duration", zap.Error(err))
		return &dto.RoutingResponse{Strategy: dto.StrategyBimodal, Route: bimodal}, nil
	}

	uc.logger.Info("Selecting best route",
		zap.Float64("bimodal_seconds", bimodalSeconds),
		zap.Float64("cycling_seconds", cyclingSeconds))

	// Велосипед побеждает только строго; ничья достается мультимодальному
	if cyclingSeconds < bimodalSeconds {
		return &dto.RoutingResponse{Strategy: dto.StrategyCycling, Route: cycling}, nil
	}
	return &dto.RoutingResponse{Strategy: dto.StrategyBimodal, Route: bimodal}, nil
}
